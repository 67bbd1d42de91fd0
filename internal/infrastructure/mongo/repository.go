package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/ports"
)

var _ ports.IProblemRepository = (*ProblemRepo)(nil)

// problemDoc — документ в коллекции problems (без ID — в домене ID int для совместимости с PG, при чтении оставляем 0).
type problemDoc struct {
	Num1          int64     `bson:"num1"`
	Num2          int64     `bson:"num2"`
	Answer        int64     `bson:"answer"`
	OptimalMethod string    `bson:"optimal_method"`
	CostScore     float64   `bson:"cost_score"`
	QualityScore  float64   `bson:"quality_score"`
	Alternatives  []string  `bson:"alternatives"`
	CreatedAt     time.Time `bson:"created_at"`
}

// attemptDoc — документ в коллекции attempts; _id — uuid попытки.
type attemptDoc struct {
	ID        string    `bson:"_id"`
	Num1      int64     `bson:"num1"`
	Num2      int64     `bson:"num2"`
	Method    string    `bson:"method"`
	Answer    int64     `bson:"answer"`
	Correct   bool      `bson:"correct"`
	ElapsedMs int64     `bson:"elapsed_ms"`
	CreatedAt time.Time `bson:"created_at"`
}

// statsDoc — строка результата агрегации по методам.
type statsDoc struct {
	Method        string  `bson:"_id"`
	Attempts      int64   `bson:"attempts"`
	Accuracy      float64 `bson:"accuracy"`
	AverageTimeMs float64 `bson:"avg_time_ms"`
}

// ProblemRepo реализует ports.IProblemRepository для MongoDB.
type ProblemRepo struct {
	client *Client
	log    *slog.Logger
}

// NewProblemRepo возвращает репозиторий задач и попыток.
func NewProblemRepo(client *Client, log *slog.Logger) *ProblemRepo {
	return &ProblemRepo{client: client, log: log}
}

// SaveProblem сохраняет решённую задачу в коллекцию.
func (r *ProblemRepo) SaveProblem(ctx context.Context, p domain.SolvedProblem) error {
	doc := problemDoc{
		Num1:          p.Num1,
		Num2:          p.Num2,
		Answer:        p.Answer,
		OptimalMethod: string(p.OptimalMethod),
		CostScore:     p.CostScore,
		QualityScore:  p.QualityScore,
		Alternatives:  make([]string, 0, len(p.Alternatives)),
		CreatedAt:     p.Timestamp,
	}
	for _, m := range p.Alternatives {
		doc.Alternatives = append(doc.Alternatives, string(m))
	}
	_, err := r.client.Problems().InsertOne(ctx, doc)
	if err != nil {
		r.log.Debug("SaveProblem failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает решённые задачи (последние сначала).
func (r *ProblemRepo) GetHistory(ctx context.Context) ([]domain.SolvedProblem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.client.Problems().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []problemDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.SolvedProblem, 0, len(docs))
	for _, d := range docs {
		p := domain.SolvedProblem{
			Num1:          d.Num1,
			Num2:          d.Num2,
			Answer:        d.Answer,
			OptimalMethod: domain.MethodName(d.OptimalMethod),
			CostScore:     d.CostScore,
			QualityScore:  d.QualityScore,
			Timestamp:     d.CreatedAt,
		}
		for _, a := range d.Alternatives {
			p.Alternatives = append(p.Alternatives, domain.MethodName(a))
		}
		list = append(list, p)
	}
	return list, nil
}

// SaveAttempt сохраняет попытку ученика.
func (r *ProblemRepo) SaveAttempt(ctx context.Context, a domain.Attempt) error {
	doc := attemptDoc{
		ID:        a.ID,
		Num1:      a.Num1,
		Num2:      a.Num2,
		Method:    string(a.Method),
		Answer:    a.Answer,
		Correct:   a.Correct,
		ElapsedMs: a.ElapsedMs,
		CreatedAt: a.Timestamp,
	}
	if _, err := r.client.Attempts().InsertOne(ctx, doc); err != nil {
		r.log.Debug("SaveAttempt failed", "error", err)
		return err
	}
	return nil
}

// MethodStats агрегирует попытки по методам через aggregation pipeline.
func (r *ProblemRepo) MethodStats(ctx context.Context) ([]domain.MethodStats, error) {
	pipeline := bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$method"},
			{Key: "attempts", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "accuracy", Value: bson.D{{Key: "$avg", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$correct", 1.0, 0.0}},
			}}}},
			{Key: "avg_time_ms", Value: bson.D{{Key: "$avg", Value: "$elapsed_ms"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cursor, err := r.client.Attempts().Aggregate(ctx, pipeline)
	if err != nil {
		r.log.Debug("MethodStats failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []statsDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.MethodStats, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.MethodStats{
			Method:        domain.MethodName(d.Method),
			Attempts:      d.Attempts,
			Accuracy:      d.Accuracy,
			AverageTimeMs: d.AverageTimeMs,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *ProblemRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
