package http

import (
	"net/http"
	"strings"
)

type RouterConfig struct {
	Auth       *AuthHandler
	Personnel  *PersonnelHandler
	Teams      *TeamHandler
	Roster     *RosterHandler
	Absences   *AbsenceHandler
	Middleware []func(http.Handler) http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	if cfg.Auth != nil {
		mux.HandleFunc("/sessions", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Auth.CreateSession(w, r)
		})
		mux.HandleFunc("/sessions/current", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				methodNotAllowed(w, http.MethodDelete)
				return
			}
			cfg.Auth.DeleteCurrentSession(w, r)
		})
	}

	if cfg.Personnel != nil {
		mux.HandleFunc("/personnel", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Personnel.List(w, r)
			case http.MethodPost:
				cfg.Personnel.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/personnel/", func(w http.ResponseWriter, r *http.Request) {
			rest := strings.TrimPrefix(r.URL.Path, "/personnel/")
			if rest == "" {
				http.NotFound(w, r)
				return
			}

			if id, ok := strings.CutSuffix(rest, "/workdays"); ok {
				if id == "" {
					http.NotFound(w, r)
					return
				}
				if r.Method != http.MethodPut {
					methodNotAllowed(w, http.MethodPut)
					return
				}
				r = r.WithContext(ContextWithPersonnelID(r.Context(), id))
				cfg.Personnel.SetWorkDays(w, r)
				return
			}

			if strings.Contains(rest, "/") {
				http.NotFound(w, r)
				return
			}
			r = r.WithContext(ContextWithPersonnelID(r.Context(), rest))
			switch r.Method {
			case http.MethodPut:
				cfg.Personnel.Update(w, r)
			case http.MethodDelete:
				cfg.Personnel.Delete(w, r)
			default:
				methodNotAllowed(w, http.MethodPut, http.MethodDelete)
			}
		})
	}

	if cfg.Teams != nil {
		mux.HandleFunc("/teams", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Teams.List(w, r)
			case http.MethodPost:
				cfg.Teams.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/teams/initialize", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Teams.Initialize(w, r)
		})
		mux.HandleFunc("/teams/", func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimPrefix(r.URL.Path, "/teams/")
			if id == "" || strings.Contains(id, "/") {
				http.NotFound(w, r)
				return
			}
			r = r.WithContext(ContextWithTeamID(r.Context(), id))
			switch r.Method {
			case http.MethodPut:
				cfg.Teams.Update(w, r)
			case http.MethodDelete:
				cfg.Teams.Delete(w, r)
			default:
				methodNotAllowed(w, http.MethodPut, http.MethodDelete)
			}
		})
	}

	if cfg.Roster != nil {
		mux.HandleFunc("/history", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Roster.History(w, r)
		})
		mux.HandleFunc("/roster/", func(w http.ResponseWriter, r *http.Request) {
			rest := strings.TrimPrefix(r.URL.Path, "/roster/")
			if rest == "" {
				http.NotFound(w, r)
				return
			}

			date, action, hasAction := strings.Cut(rest, "/")
			if date == "" {
				http.NotFound(w, r)
				return
			}
			r = r.WithContext(ContextWithRosterDate(r.Context(), date))

			if hasAction {
				switch action {
				case "randomize":
					if r.Method != http.MethodPost {
						methodNotAllowed(w, http.MethodPost)
						return
					}
					cfg.Roster.Randomize(w, r)
				case "export":
					if r.Method != http.MethodGet {
						methodNotAllowed(w, http.MethodGet)
						return
					}
					cfg.Roster.Export(w, r)
				default:
					http.NotFound(w, r)
				}
				return
			}

			switch r.Method {
			case http.MethodGet:
				cfg.Roster.Get(w, r)
			case http.MethodPut:
				cfg.Roster.Put(w, r)
			case http.MethodDelete:
				cfg.Roster.Delete(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
			}
		})
	}

	if cfg.Absences != nil {
		mux.HandleFunc("/absences/", func(w http.ResponseWriter, r *http.Request) {
			date := strings.TrimPrefix(r.URL.Path, "/absences/")
			if date == "" || strings.Contains(date, "/") {
				http.NotFound(w, r)
				return
			}
			r = r.WithContext(ContextWithRosterDate(r.Context(), date))
			switch r.Method {
			case http.MethodGet:
				cfg.Absences.Get(w, r)
			case http.MethodPut:
				cfg.Absences.Put(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPut)
			}
		})
	}

	var handler http.Handler = mux
	if len(cfg.Middleware) > 0 {
		for i := len(cfg.Middleware) - 1; i >= 0; i-- {
			if cfg.Middleware[i] != nil {
				handler = cfg.Middleware[i](handler)
			}
		}
	}

	return handler
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
