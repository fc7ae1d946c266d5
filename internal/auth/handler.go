package auth

import (
	"net/http"
	"strings"

	"github.com/clipvault/clipvault/internal/csrf"
	"github.com/clipvault/clipvault/internal/httpx"
	"github.com/clipvault/clipvault/internal/session"
	"github.com/clipvault/clipvault/internal/store"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Handler serves the register/login/logout endpoints. Username and
// email uniqueness is checked here, before store insertion; the store
// itself does not reject duplicates.
type Handler struct {
	store     *store.Store
	sessions  session.Store
	responses *httpx.ResponseHandler
	logger    Logger
}

// NewHandler creates an auth handler.
func NewHandler(st *store.Store, sessions session.Store, responses *httpx.ResponseHandler, logger Logger) *Handler {
	return &Handler{store: st, sessions: sessions, responses: responses, logger: logger}
}

// HandleLoginPage hands the rendering layer what it needs for the login
// form: the CSRF token and any pending notices.
func (h *Handler) HandleLoginPage(c *gin.Context) {
	h.formPage(c)
}

func (h *Handler) HandleRegisterPage(c *gin.Context) {
	h.formPage(c)
}

func (h *Handler) formPage(c *gin.Context) {
	sess := session.FromContext(c)
	data := gin.H{
		"csrfToken": sess.CsrfToken,
		"error":     sess.ConsumeFlash("error"),
		"success":   sess.ConsumeFlash("success"),
	}
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		h.logger.LogError(err, "failed to save session after flash read")
	}
	h.responses.Success(c, data, "")
}

func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.reject(c, "Email and password are required.", "/auth/login")
		return
	}
	if req.Email == "" || req.Password == "" {
		h.reject(c, "Email and password are required.", "/auth/login")
		return
	}

	user, found := h.store.FindUserByEmail(req.Email)
	if !found {
		h.badCredentials(c)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		h.badCredentials(c)
		return
	}

	if err := h.signIn(c, user); err != nil {
		h.responses.InternalError(c, "Failed to save session", err)
		return
	}
	h.logger.LogInfo("user logged in", map[string]interface{}{"user_id": user.ID})
	h.succeed(c, user, "")
}

func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.reject(c, "All fields are required.", "/auth/register")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		h.reject(c, "All fields are required.", "/auth/register")
		return
	}
	if req.Password != req.ConfirmPassword {
		h.reject(c, "Passwords do not match.", "/auth/register")
		return
	}
	if len(req.Password) < minPasswordLength {
		h.reject(c, "Password must be at least 6 characters.", "/auth/register")
		return
	}
	if _, taken := h.store.FindUserByEmail(req.Email); taken {
		h.conflict(c, "email", "Email is already registered.", "/auth/register")
		return
	}
	if _, taken := h.store.FindUserByUsername(req.Username); taken {
		h.conflict(c, "username", "Username is already taken.", "/auth/register")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.responses.InternalError(c, "Failed to create account", err)
		return
	}

	user, err := h.store.CreateUser(req.Username, req.Email, string(hashed))
	if err != nil {
		h.responses.InternalError(c, "Failed to create account", err)
		return
	}

	if err := h.signIn(c, user); err != nil {
		h.responses.InternalError(c, "Failed to save session", err)
		return
	}
	h.logger.LogInfo("user registered", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})

	if httpx.WantsJSON(c) {
		h.responses.Created(c, userInfo(user), "Account created successfully!")
		return
	}
	sess := session.FromContext(c)
	h.responses.FlashRedirect(c, h.sessions, sess, "success", "Account created successfully!", "/")
}

// HandleLogout destroys the session and clears the cookie. A fresh
// session (and with it a fresh CSRF token) is created on the next
// request.
func (h *Handler) HandleLogout(c *gin.Context) {
	sess := session.FromContext(c)
	if sess != nil {
		if err := h.sessions.Delete(c.Request.Context(), sess.ID); err != nil {
			h.logger.LogError(err, "failed to delete session")
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// signIn binds the user to the current session. The CSRF token is
// re-issued if the session never had one.
func (h *Handler) signIn(c *gin.Context, user store.User) error {
	sess := session.FromContext(c)
	sess.UserID = user.ID
	sess.Username = user.Username
	if _, _, err := csrf.EnsureToken(sess); err != nil {
		return err
	}
	return h.sessions.Save(c.Request.Context(), sess)
}

func (h *Handler) succeed(c *gin.Context, user store.User, message string) {
	if httpx.WantsJSON(c) {
		h.responses.Success(c, userInfo(user), message)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) badCredentials(c *gin.Context) {
	if httpx.WantsJSON(c) {
		h.responses.Unauthorized(c, "Invalid email or password.")
		return
	}
	sess := session.FromContext(c)
	h.responses.FlashRedirect(c, h.sessions, sess, "error", "Invalid email or password.", "/auth/login")
}

func (h *Handler) reject(c *gin.Context, message, backTo string) {
	if httpx.WantsJSON(c) {
		h.responses.ValidationError(c, "", message)
		return
	}
	sess := session.FromContext(c)
	h.responses.FlashRedirect(c, h.sessions, sess, "error", message, backTo)
}

func (h *Handler) conflict(c *gin.Context, field, message, backTo string) {
	if httpx.WantsJSON(c) {
		h.responses.Conflict(c, field, message)
		return
	}
	sess := session.FromContext(c)
	h.responses.FlashRedirect(c, h.sessions, sess, "error", message, backTo)
}

func userInfo(user store.User) UserInfo {
	return UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Avatar:   user.Avatar,
	}
}
