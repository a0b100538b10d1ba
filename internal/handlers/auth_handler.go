package handlers

import (
	"errors"
	"net/http"

	"storefront/internal/backend"
	"storefront/internal/forms"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/session"
	"storefront/internal/views"

	"github.com/rs/zerolog"
)

type AuthHandler struct {
	backend  *backend.Client
	sessions *session.Manager
	renderer *views.Renderer
	logger   zerolog.Logger
}

func NewAuthHandler(client *backend.Client, sessions *session.Manager, renderer *views.Renderer, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		backend:  client,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

type loginPage struct {
	Title          string
	Session        session.State
	Form           *forms.LoginForm
	EmailErrors    []string
	PasswordErrors []string
	Message        string
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "login", loginPage{
		Title:   "Login",
		Session: middleware.CurrentSession(r),
		Form:    forms.NewLoginForm(),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form, err := forms.ParseLoginForm(r.PostForm)
	if err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	page := loginPage{
		Title:          "Login",
		Session:        middleware.CurrentSession(r),
		Form:           form,
		EmailErrors:    forms.Show(form.Errors, form.Dirty, "email"),
		PasswordErrors: forms.Show(form.Errors, form.Dirty, "password"),
	}

	if !form.IsValid() {
		h.renderer.Render(w, http.StatusOK, "login", page)
		return
	}

	users, err := h.backend.FindUsers(r.Context(), form.Email, form.Password)
	if err != nil {
		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) {
			page.Message = "Unable to connect to server"
		} else {
			page.Message = "An error occurred. Please try again."
		}
		h.logger.Error().Err(err).Msg("Login lookup failed")
		h.renderer.Render(w, http.StatusOK, "login", page)
		return
	}

	if len(users) == 0 {
		page.Message = "Invalid Login, please try again"
		h.renderer.Render(w, http.StatusOK, "login", page)
		return
	}

	var state session.State
	state.Login(session.Payload{
		UserID:   users[0].ID,
		FullName: users[0].FullName,
		Role:     users[0].Role,
	})

	if err := h.sessions.Issue(w, state); err != nil {
		page.Message = "An error occurred. Please try again."
		h.renderer.Render(w, http.StatusOK, "login", page)
		return
	}

	h.logger.Info().Str("user_id", state.UserID).Str("role", state.Role).Msg("User logged in")

	if state.Role == string(models.RoleUser) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
	}
}

type registerPage struct {
	Title     string
	Session   session.State
	Form      *forms.RegisterForm
	AllErrors []string
	Countries []models.Country
	Message   string
	Redirect  string
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "register", registerPage{
		Title:     "Register",
		Session:   middleware.CurrentSession(r),
		Form:      forms.NewRegisterForm(),
		Countries: models.Countries(),
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form, err := forms.ParseRegisterForm(r.PostForm)
	if err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	page := registerPage{
		Title:     "Register",
		Session:   middleware.CurrentSession(r),
		Form:      form,
		Countries: models.Countries(),
		AllErrors: registerErrorList(form),
	}

	if !form.IsValid() {
		page.Message = "Errors"
		h.renderer.Render(w, http.StatusOK, "register", page)
		return
	}

	created, err := h.backend.CreateUser(r.Context(), models.User{
		Email:              form.Email,
		Password:           form.Password,
		FullName:           form.FullName,
		DateOfBirth:        form.DateOfBirth,
		Gender:             form.Gender,
		Country:            form.Country,
		ReceiveNewsLetters: form.ReceiveNewsLetters,
		Role:               string(models.RoleUser),
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Registration failed")
		page.Message = "Errors in database connection"
		h.renderer.Render(w, http.StatusOK, "register", page)
		return
	}

	var state session.State
	state.Login(session.Payload{
		UserID:   created.ID,
		FullName: created.FullName,
		Role:     created.Role,
	})

	if err := h.sessions.Issue(w, state); err != nil {
		page.Message = "Errors in database connection"
		h.renderer.Render(w, http.StatusOK, "register", page)
		return
	}

	h.logger.Info().Str("user_id", created.ID).Msg("User registered")

	page.Session = state
	page.Message = "Successfully Registered"
	page.Redirect = "/dashboard"
	h.renderer.Render(w, http.StatusOK, "register", page)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusNotFound, "notfound", struct {
		Title   string
		Session session.State
	}{
		Title:   "Page Not Found",
		Session: middleware.CurrentSession(r),
	})
}

// registerErrorList flattens the dirty-visible errors into the summary list
// shown at the top of the register card.
func registerErrorList(form *forms.RegisterForm) []string {
	fields := []string{"email", "password", "fullName", "dateOfBirth", "gender", "country"}

	var all []string
	for _, field := range fields {
		all = append(all, forms.Show(form.Errors, form.Dirty, field)...)
	}
	return all
}
