// Package handlers provides http.HandlerFunc handler functions to be used for endpoints.
package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/Igbinosa-Christian/scissorapp/internal/api/rest/middleware"
	"github.com/Igbinosa-Christian/scissorapp/internal/api/rest/modeldto"
	"github.com/Igbinosa-Christian/scissorapp/internal/api/rest/templates"
	"github.com/Igbinosa-Christian/scissorapp/internal/config"
	serviceErrors "github.com/Igbinosa-Christian/scissorapp/internal/service/errors"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/geo"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/identity"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/ledger"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/modellink"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/shortener"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage"
	storageErrors "github.com/Igbinosa-Christian/scissorapp/internal/storage/errors"
)

const (
	dbTimeout   = 500 * time.Millisecond
	flashCookie = "scissor_flash"
	dateLayout  = "02 Jan 2006 15:04"
)

// PageHandler defines data structure handling and provides support for adding new implementations.
type PageHandler struct {
	log      *zap.Logger
	cfg      *config.ServerConfig
	registry shortener.Processor
	ledger   ledger.Processor
	identity identity.Processor
	geo      geo.Resolver
	session  *middleware.SessionHandler
	dbPinger storage.Pinger
}

// InitPageHandler initializes a PageHandler object and sets its attributes.
func InitPageHandler(registry shortener.Processor, visitLedger ledger.Processor, users identity.Processor,
	resolver geo.Resolver, session *middleware.SessionHandler, dbPinger storage.Pinger,
	cfg *config.ServerConfig, logger *zap.Logger) (*PageHandler, error) {
	if registry == nil || visitLedger == nil || users == nil {
		return nil, errors.New("nil service was passed to page handler initializer")
	}
	return &PageHandler{
		log:      logger,
		cfg:      cfg,
		registry: registry,
		ledger:   visitLedger,
		identity: users,
		geo:      resolver,
		session:  session,
		dbPinger: dbPinger,
	}, nil
}

// HandleIndex renders the landing page.
func (h *PageHandler) HandleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, "index.gohtml", modeldto.PageView{
			Username: currentUser(r),
			Flash:    h.popFlash(w, r),
		})
	}
}

// HandleRegisterForm renders the registration form.
func (h *PageHandler) HandleRegisterForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, "register.gohtml", modeldto.PageView{Flash: h.popFlash(w, r)})
	}
}

// HandleRegister creates a new account, rejecting duplicates and mismatched passwords.
func (h *PageHandler) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		username := r.PostFormValue("username")
		email := r.PostFormValue("email")
		password := r.PostFormValue("password")
		conPassword := r.PostFormValue("con_password")
		if username == "" || email == "" || password == "" {
			h.flashRedirect(w, r, "/register", "All fields are required", "error")
			return
		}
		if password != conPassword {
			h.flashRedirect(w, r, "/register", "Passwords do not match", "error")
			return
		}
		_, err := h.identity.Register(ctx, username, email, password)
		if err != nil {
			var dupUser *storageErrors.DuplicateUsernameError
			var dupEmail *storageErrors.DuplicateEmailError
			switch {
			case errors.As(err, &dupUser):
				h.flashRedirect(w, r, "/register", "User with username "+username+" exists", "error")
			case errors.As(err, &dupEmail):
				h.flashRedirect(w, r, "/register", "User with email "+email+" exists", "error")
			default:
				h.log.Error("HandleRegister:", zap.Error(err))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}
		h.flashRedirect(w, r, "/login", "User Account Created", "success")
	}
}

// HandleLoginForm renders the login form.
func (h *PageHandler) HandleLoginForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, "login.gohtml", modeldto.PageView{Flash: h.popFlash(w, r)})
	}
}

// HandleLogin authenticates a user and establishes the session cookie.
func (h *PageHandler) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		username := r.PostFormValue("username")
		password := r.PostFormValue("password")
		user, err := h.identity.Authenticate(ctx, username, password)
		if err != nil {
			var invalid *serviceErrors.InvalidCredentialsError
			if errors.As(err, &invalid) {
				h.flashRedirect(w, r, "/login", "Invalid username or password", "error")
				return
			}
			h.log.Error("HandleLogin:", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		h.session.SetSession(w, user.Username)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// HandleLogout clears the session cookie.
func (h *PageHandler) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.session.ClearSession(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// HandleDashboard renders the link creation form.
func (h *PageHandler) HandleDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, "dashboard.gohtml", modeldto.DashboardView{
			PageView: modeldto.PageView{Username: currentUser(r), Flash: h.popFlash(w, r)},
		})
	}
}

// HandleCreateLink registers a short link for the signed-in user and renders the result.
func (h *PageHandler) HandleCreateLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		username := currentUser(r)
		originalURL := r.PostFormValue("originalUrl")
		customAlias := r.PostFormValue("customAlias")
		link, err := h.registry.CreateLink(ctx, username, originalURL, customAlias)
		if err != nil {
			var badURL *serviceErrors.ServiceIncorrectInputURL
			var dupAlias *serviceErrors.DuplicateAliasError
			switch {
			case errors.As(err, &badURL):
				h.flashRedirect(w, r, "/dashboard", "Enter a valid URL", "error")
			case errors.As(err, &dupAlias):
				h.flashRedirect(w, r, "/dashboard", "Custom Url "+dupAlias.ShortURL+" already exists", "error")
			default:
				h.log.Error("HandleCreateLink:", zap.Error(err))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}
		view := h.linkView(link)
		h.render(w, r, "dashboard.gohtml", modeldto.DashboardView{
			PageView: modeldto.PageView{Username: username, Flash: h.popFlash(w, r)},
			Link:     &view,
		})
	}
}

// HandleRedirect resolves a short URL, records the visit and redirects to the original URL.
func (h *PageHandler) HandleRedirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctxResolve, cancelResolve := context.WithTimeout(r.Context(), dbTimeout)
		defer cancelResolve()
		shortURL := chi.URLParam(r, "shortURL")
		link, err := h.registry.Resolve(ctxResolve, shortURL)
		if err != nil {
			var notFound *storageErrors.LinkNotFoundError
			if errors.As(err, &notFound) {
				http.NotFound(w, r)
				return
			}
			var timeout *storageErrors.ContextTimeoutExceededError
			if errors.As(err, &timeout) {
				w.WriteHeader(http.StatusGatewayTimeout)
				return
			}
			h.log.Error("HandleRedirect:", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		// a failed lookup or ledger write must not break the redirect itself;
		// the geo hop runs on the request context and the ledger write gets a
		// fresh db window so a slow hop cannot expire it
		location := h.geo.ResolveLocation(r.Context())
		ctxVisit, cancelVisit := context.WithTimeout(r.Context(), dbTimeout)
		defer cancelVisit()
		if err := h.ledger.RecordVisit(ctxVisit, link.ID, location); err != nil {
			h.log.Error("HandleRedirect: visit not recorded", zap.Int64("linkID", link.ID), zap.Error(err))
		}
		w.Header().Set("Location", link.OriginalURL)
		w.WriteHeader(http.StatusTemporaryRedirect)
	}
}

// HandleHistory lists all links owned by the named user.
func (h *PageHandler) HandleHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		owner := chi.URLParam(r, "user")
		links, err := h.registry.History(ctx, owner)
		if err != nil {
			h.log.Error("HandleHistory:", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		views := make([]modeldto.LinkView, len(links))
		for i, link := range links {
			views[i] = h.linkView(link)
		}
		h.render(w, r, "history.gohtml", modeldto.HistoryView{
			PageView: modeldto.PageView{Username: currentUser(r), Flash: h.popFlash(w, r)},
			Owner:    owner,
			Links:    views,
		})
	}
}

// HandleAnalytics shows the per-location visit breakdown for one link.
func (h *PageHandler) HandleAnalytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		link, err := h.registry.GetByID(ctx, id)
		if err != nil {
			var notFound *storageErrors.LinkIDNotFoundError
			if errors.As(err, &notFound) {
				http.NotFound(w, r)
				return
			}
			h.log.Error("HandleAnalytics:", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		visits, err := h.ledger.VisitsByLink(ctx, id)
		if err != nil {
			h.log.Error("HandleAnalytics:", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		rows := make([]modeldto.VisitRowView, len(visits))
		for i, row := range visits {
			rows[i] = modeldto.VisitRowView{Location: row.Location, NumberOfVisits: row.NumberOfVisits}
		}
		h.render(w, r, "analytics.gohtml", modeldto.AnalyticsView{
			PageView: modeldto.PageView{Username: currentUser(r), Flash: h.popFlash(w, r)},
			Link:     h.linkView(link),
			Visits:   rows,
		})
	}
}

// HandleDelete removes a link when the requester owns it.
func (h *PageHandler) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), dbTimeout)
		defer cancel()
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if err := h.registry.Delete(ctx, currentUser(r), id); err != nil {
			var notFound *storageErrors.LinkIDNotFoundError
			var notOwner *serviceErrors.NotOwnerError
			switch {
			case errors.As(err, &notFound):
				http.NotFound(w, r)
			case errors.As(err, &notOwner):
				h.flashRedirect(w, r, "/dashboard", "Cannot delete another user's link", "error")
			default:
				h.log.Error("HandleDelete:", zap.Error(err))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
			return
		}
		h.flashRedirect(w, r, "/dashboard", "Link deleted", "success")
	}
}

// HandlePingDB reports storage connectivity.
func (h *PageHandler) HandlePingDB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.dbPinger.PingDB(); err != nil {
			http.Error(w, "Database connection failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// linkView maps a service link onto its page representation.
func (h *PageHandler) linkView(link modellink.Link) modeldto.LinkView {
	return modeldto.LinkView{
		ID:           link.ID,
		OriginalURL:  link.OriginalURL,
		ShortURL:     link.ShortURL,
		FullShortURL: strings.TrimRight(h.cfg.BaseURL, "/") + "/" + link.ShortURL,
		Visits:       link.Visits,
		DateCreated:  link.DateCreated.Format(dateLayout),
		ImgName:      link.ImgName,
	}
}

// render executes a page template and reports template failures.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, name, data); err != nil {
		h.log.Error("Template rendering failed", zap.String("template", name), zap.Error(err))
	}
}

// flashRedirect stores a flash message in a short-lived cookie and redirects back to a form.
func (h *PageHandler) flashRedirect(w http.ResponseWriter, r *http.Request, target string, message string, category string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// popFlash reads and clears the pending flash message, if any.
func (h *PageHandler) popFlash(w http.ResponseWriter, r *http.Request) modeldto.Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return modeldto.Flash{}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return modeldto.Flash{}
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 {
		return modeldto.Flash{}
	}
	return modeldto.Flash{Category: parts[0], Message: parts[1]}
}

// currentUser returns the signed-in username or an empty string for anonymous requests.
func currentUser(r *http.Request) string {
	username, _ := middleware.GetUsername(r)
	return username
}
