package trainer

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/ports"
)

// Controller — маршруты тренажёра: solve, history, attempts, stats, methods, problems.
type Controller struct {
	uc  ports.ITrainerUseCase
	log *slog.Logger
}

// New создаёт контроллер тренажёра.
func New(uc ports.ITrainerUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/solve", c.solve)
	api.GET("/history", c.history)
	api.POST("/attempts", c.recordAttempt)
	api.GET("/stats", c.stats)
	api.GET("/methods", c.methods)
	api.GET("/methods/:name/study", c.study)
	api.GET("/problems", c.problem)
}

// @Summary Выбрать оптимальный метод
// @Description Принимает два целых числа и необязательный список разрешённых методов, возвращает оптимальный метод, до двух альтернатив и пошаговые решения.
// @Tags trainer
// @Accept json
// @Produce json
// @Param request body SolveRequest true "Числа и разрешённые методы"
// @Success 200 {object} SolveResponse "Ранжирование методов"
// @Failure 400 {object} ErrorResponse "Невалидные числа или неизвестный метод"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка движка"
// @Router /api/v1/solve [post]
func (c *Controller) solve(ctx *gin.Context) {
	var req SolveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("solve bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	allowed := make([]domain.MethodName, 0, len(req.AllowedMethods))
	for _, m := range req.AllowedMethods {
		allowed = append(allowed, domain.MethodName(m))
	}

	ranking, err := c.uc.Solve(ctx.Request.Context(), req.Num1, req.Num2, allowed)
	if err != nil {
		c.fail(ctx, "solve", err)
		return
	}
	ctx.JSON(http.StatusOK, toSolveResponse(int64(req.Num1), int64(req.Num2), ranking))
}

// @Summary История решённых задач
// @Tags trainer
// @Produce json
// @Success 200 {object} HistoryResponse "Список задач, новые первыми"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "history", err)
		return
	}
	items := make([]HistoryItem, len(list))
	for i, p := range list {
		items[i] = toHistoryItem(p)
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}

// @Summary Записать попытку ученика
// @Tags trainer
// @Accept json
// @Produce json
// @Param request body AttemptRequest true "Ответ ученика"
// @Success 201 {object} AttemptResponse "Сохранённая попытка"
// @Failure 400 {object} ErrorResponse "Невалидный запрос"
// @Router /api/v1/attempts [post]
func (c *Controller) recordAttempt(ctx *gin.Context) {
	var req AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("attempt bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	saved, err := c.uc.RecordAttempt(ctx.Request.Context(), domain.Attempt{
		Num1:      req.Num1,
		Num2:      req.Num2,
		Method:    domain.MethodName(req.Method),
		Answer:    req.Answer,
		ElapsedMs: req.ElapsedMs,
	})
	if err != nil {
		c.fail(ctx, "attempt", err)
		return
	}
	ctx.JSON(http.StatusCreated, toAttemptResponse(saved))
}

// @Summary Статистика по методам
// @Tags trainer
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /api/v1/stats [get]
func (c *Controller) stats(ctx *gin.Context) {
	list, err := c.uc.MethodStats(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "stats", err)
		return
	}
	items := make([]StatsItem, len(list))
	for i, s := range list {
		items[i] = StatsItem{
			Method:        string(s.Method),
			Attempts:      s.Attempts,
			Accuracy:      s.Accuracy,
			AverageTimeMs: s.AverageTimeMs,
		}
	}
	ctx.JSON(http.StatusOK, StatsResponse{Items: items})
}

func (c *Controller) methods(ctx *gin.Context) {
	list := c.uc.Methods()
	items := make([]MethodItem, len(list))
	for i, m := range list {
		items[i] = MethodItem{Name: string(m.Name), DisplayName: m.DisplayName, Characteristic: m.Characteristic}
	}
	ctx.JSON(http.StatusOK, MethodsResponse{Items: items})
}

// @Summary Учебный материал по методу
// @Tags trainer
// @Produce json
// @Param name path string true "Имя метода, например near_100"
// @Success 200 {object} StudyResponse
// @Failure 404 {object} ErrorResponse "Метод не найден"
// @Router /api/v1/methods/{name}/study [get]
func (c *Controller) study(ctx *gin.Context) {
	content, err := c.uc.StudyContent(domain.MethodName(ctx.Param("name")))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownMethod) {
			c.log.Warn("study unknown method", "error", err)
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.fail(ctx, "study", err)
		return
	}
	ctx.JSON(http.StatusOK, toStudyResponse(content))
}

// @Summary Задача для тренировки
// @Tags trainer
// @Produce json
// @Param method query string false "Метод; пусто — любой"
// @Success 200 {object} ProblemResponse
// @Failure 400 {object} ErrorResponse "Неизвестный метод"
// @Router /api/v1/problems [get]
func (c *Controller) problem(ctx *gin.Context) {
	p, err := c.uc.GenerateProblem(ctx.Request.Context(), domain.MethodName(ctx.Query("method")))
	if err != nil {
		c.fail(ctx, "problem", err)
		return
	}
	ctx.JSON(http.StatusOK, ProblemResponse{Num1: p.Num1, Num2: p.Num2, Method: string(p.Method)})
}

// fail отвечает ошибкой: ошибки ввода и неизвестный метод — 400, остальное — 500.
func (c *Controller) fail(ctx *gin.Context, op string, err error) {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrUnknownMethod) {
		c.log.Warn(op+" rejected", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.log.Error(op+" failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
