package v1

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spendbase/backend/internal/auth"
	"github.com/spendbase/backend/internal/httputil"
	"github.com/spendbase/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterAuthRoutes registers the routes for registration and login with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsRegister)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", Login)
}

// RegisterEditable represents all parameters of a registration request
type RegisterEditable struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"hunter22"`
	Name     string `json:"name" example:"Jane"`
}

func (editable RegisterEditable) validate() error {
	if _, err := mail.ParseAddress(editable.Email); err != nil {
		return errEmailInvalid
	}

	if len(editable.Password) < 6 {
		return errPasswordTooWeak
	}

	if len(editable.Name) < 2 {
		return errNameTooShort
	}

	return nil
}

type UserResponse struct {
	Data  *User   `json:"data"`                                       // Data for the user
	Error *string `json:"error" example:"a valid email address must be set"` // The error, if any occurred
}

type User struct {
	models.DefaultModel
	Email string `json:"email" example:"jane@example.com"`
	Name  string `json:"name" example:"Jane"`
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
		Name:         model.Name,
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/register [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Creates a new user and seeds their default categories
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/v1/register [post]
func Register(c *gin.Context) {
	var editable RegisterEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	if err := editable.validate(); err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	user := models.User{
		Email: editable.Email,
		Name:  editable.Name,
	}

	err = user.SetPassword(editable.Password)
	if err != nil {
		e := models.ErrGeneral.Error()
		log.Error().Err(err).Msg("hashing password failed")
		c.JSON(http.StatusInternalServerError, UserResponse{Error: &e})
		return
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	// Seeding is idempotent, a failure here only delays the defaults until
	// the next explicit seed call
	err = models.EnsureDefaultCategories(models.DB, user.ID)
	if err != nil {
		log.Error().Err(err).Str("user", user.ID.String()).Msg("seeding default categories failed")
	}

	data := newUser(user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// LoginEditable represents all parameters of a login request
type LoginEditable struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"hunter22"`
}

type LoginResponse struct {
	Data  *LoginData `json:"data"`                                   // The session token and user
	Error *string    `json:"error" example:"the email or password is incorrect"` // The error, if any occurred
}

type LoginData struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."` // Bearer token for subsequent requests
	User  User   `json:"user"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Login
// @Description	Verifies credentials and returns a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/login [post]
func Login(c *gin.Context) {
	var editable LoginEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	// Stored emails are normalized to lower case
	var user models.User
	err = models.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(editable.Email))).First(&user).Error
	if err != nil {
		// Unknown email and wrong password are indistinguishable on purpose
		if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			err = models.ErrCredentialsInvalid
		}

		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	if !user.CheckPassword(editable.Password) {
		e := models.ErrCredentialsInvalid.Error()
		c.JSON(status(models.ErrCredentialsInvalid), LoginResponse{Error: &e})
		return
	}

	token, err := auth.GenerateToken(auth.Secret(), user.ID)
	if err != nil {
		e := models.ErrGeneral.Error()
		log.Error().Err(err).Msg("signing session token failed")
		c.JSON(http.StatusInternalServerError, LoginResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Data: &LoginData{
		Token: token,
		User:  newUser(user),
	}})
}
