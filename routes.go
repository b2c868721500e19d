package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"

	"cartly.io/api/auth"
	"cartly.io/api/dtos"
	"cartly.io/api/models"
	"cartly.io/api/services"
	"cartly.io/api/validation"
)

type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// renderError maps the two service error kinds to their status codes;
// everything else is an internal failure the client learns nothing about.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *models.ValidationError

	switch {
	case errors.Is(err, models.ErrNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Message: "Entity Not Found"})
	case errors.As(err, &vErr):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Message: "Bad Request", Errors: vErr.Errors})
	default:
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Message: "Internal Server Error"})
	}
}

func badRequest(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errorResponse{Message: "Bad Request"})
}

// requestLogger tags each request with a nanoid and logs it on the way out.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, err := gonanoid.New(12)
		if err == nil {
			w.Header().Set("X-Request-Id", requestID)
		}

		start := time.Now()
		next.ServeHTTP(w, r)

		log.Info().
			Str("requestID", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func newRouter(listService services.ListService, userService services.UserService, apiKeys map[string]string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "It works!")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(apiKeys))

		r.Route("/lists", func(r chi.Router) {
			r.Get("/", getLists(listService))
			r.Post("/", createList(listService))
			r.Get("/{listID}", getList(listService))
			r.Patch("/{listID}", updateList(listService))
			r.Patch("/{listID}/leave", leaveList(listService))
			r.Patch("/{listID}/archive", archiveList(listService))
			r.Delete("/{listID}/remove", deleteList(listService))
			r.Post("/{listID}/item", addItem(listService))
			r.Patch("/{listID}/item/{itemID}", updateItem(listService))
			r.Post("/{listID}/item/remove/{itemID}", removeItem(listService))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", getUsers(userService))
			r.Post("/", createUser(userService))
			r.Get("/{userID}", getUser(userService))
		})
	})

	return r
}

func getLists(listService services.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := auth.UserID(r.Context())

		scope, err := validation.ParseScope(r.URL.Query().Get("filter"))
		if err != nil {
			renderError(w, r, err)
			return
		}

		limit := validation.ParseLimit(r.URL.Query().Get("limit"))
		cursor := r.URL.Query().Get("cursor")

		lists, nextCursor, err := listService.List(r.Context(), scope, cursor, limit, callerID)
		if err != nil {
			renderError(w, r, err)
			return
		}

		render.JSON(w, r, dtos.ListPageResponse{
			Lists: lists,
			Pagination: dtos.Pagination{
				HasNextPage: nextCursor != nil,
				NextCursor:  nextCursor,
			},
		})
	}
}

func createList(listService services.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := auth.UserID(r.Context())

		payload := dtos.CreateListRequest{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			badRequest(w, r)
			return
		}

		params, err := validation.ParseNewList(payload)
		if err != nil {
			renderError(w, r, err)
			return
		}

		list, err := listService.Create(r.Context(), callerID, params)
		if err != nil {
			renderError(w, r, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, list)
	}
}

func getList(listService services.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := auth.UserID(r.Context())

		list, err := listService.Get(r.Context(), chi.URLParam(r, "listID"), callerID)
		if err != nil {
			renderError(w, r, err)
			return
		}

		render.JSON(w, r, list)
	}
}

func updateList(listService services.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := auth.UserID(r.Context())

		payload := dtos.UpdateListRequest{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			badRequest(w, r)
			return
		}

		params, err := validation.ParseListUpdate(payload)
		if err != nil {
			renderError(w, r, err)
			return
		}

		list, err := listService.Update(r.Context(), chi.URLParam(r, "listID"), callerID, params)
		if err != nil {
			renderError(w, r, err)
			return
		}

		render.JSON(w, r, list)
	}
}

func leaveList(listService services.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := auth.UserID(r.Context())

		if err := listService.Leave(r.Context(), chi.URLParam(r, "listID"), callerID); err != nil {
			renderError(w, r, err)
			return
		}

		render.JSON(w, r, dtos.AckResponse{Success: true})
	}
}

func archiveList(listService services.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := auth.UserID(r.Context())

		list, err := listService.Archive(r.Context(), chi.URLParam(r, "listID"), callerID)
		if err != nil {
			renderError(w, r, err)
			return
		}

		render.JSON(w, r, list)
	}
}

func deleteList(listService services.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := auth.UserID(r.Context())

		listID := chi.URLParam(r, "listID")
		if err := listService.Delete(r.Context(), listID, callerID); err != nil {
			renderError(w, r, err)
			return
		}

		render.JSON(w, r, dtos.AckResponse{Success: true, ID: listID})
	}
}

func addItem(listService services.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := auth.UserID(r.Context())

		payload := dtos.AddItemRequest{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			badRequest(w, r)
			return
		}

		params, err := validation.ParseNewItem(payload)
		if err != nil {
			renderError(w, r, err)
			return
		}

		list, err := listService.AddItem(r.Context(), chi.URLParam(r, "listID"), callerID, params)
		if err != nil {
			renderError(w, r, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, list)
	}
}

func updateItem(listService services.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := auth.UserID(r.Context())

		payload := dtos.UpdateItemRequest{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			badRequest(w, r)
			return
		}

		params, err := validation.ParseItemUpdate(payload)
		if err != nil {
			renderError(w, r, err)
			return
		}

		list, err := listService.UpdateItem(r.Context(), chi.URLParam(r, "listID"), chi.URLParam(r, "itemID"), callerID, params)
		if err != nil {
			renderError(w, r, err)
			return
		}

		render.JSON(w, r, list)
	}
}

func removeItem(listService services.ListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := auth.UserID(r.Context())

		list, err := listService.RemoveItem(r.Context(), chi.URLParam(r, "listID"), chi.URLParam(r, "itemID"), callerID)
		if err != nil {
			renderError(w, r, err)
			return
		}

		render.JSON(w, r, list)
	}
}

func getUsers(userService services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := validation.ParseLimit(r.URL.Query().Get("limit"))
		cursor := r.URL.Query().Get("cursor")

		users, nextCursor, err := userService.List(r.Context(), cursor, limit)
		if err != nil {
			renderError(w, r, err)
			return
		}

		render.JSON(w, r, dtos.UserPageResponse{
			Users: users,
			Pagination: dtos.Pagination{
				HasNextPage: nextCursor != nil,
				NextCursor:  nextCursor,
			},
		})
	}
}

func createUser(userService services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := dtos.CreateUserRequest{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			badRequest(w, r)
			return
		}

		params, err := validation.ParseNewUser(payload)
		if err != nil {
			renderError(w, r, err)
			return
		}

		user, err := userService.Create(r.Context(), params)
		if err != nil {
			renderError(w, r, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, user)
	}
}

func getUser(userService services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := userService.Get(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			renderError(w, r, err)
			return
		}

		render.JSON(w, r, user)
	}
}
