package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/tythe-barn/time-tracker/backend/internal/config"
	"github.com/tythe-barn/time-tracker/backend/internal/domain"
	"github.com/tythe-barn/time-tracker/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// 打卡不需要登录，员工在前台直接输入姓名
	h.Mux.Route("/clock", func(r chi.Router) {
		r.Post("/in", h.ClockIn)
		r.Post("/out", h.ClockOut)
	})

	// 未登录时只能查看指定员工的工时
	h.Mux.With(h.principal).Get("/timesheets", h.GetTimesheets)

	// 以下 API 只有经理可以调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.RequiredRole([]domain.Role{domain.RoleManager}))

		r.Get("/me", h.GetMe)

		r.Route("/shifts", func(r chi.Router) {
			r.Post("/", h.CreateShift)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shift)
				r.Get("/", h.GetShift)
				r.Patch("/", h.UpdateShift)
				r.Delete("/", h.DeleteShift)
			})
		})
	})
}
