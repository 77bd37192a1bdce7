package model

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

const (
	DefaultAlpha         = 0.0001
	DefaultTol           = 0.001
	DefaultMaxIter       = 1000
	DefaultNIterNoChange = 5
	maxDLoss             = 1e12
)

// SGDClassifier - логистическая регрессия, обучаемая стохастическим градиентным спуском
// с L2 регуляризацией и "оптимальным" шагом обучения eta = 1/(alpha*(t0+t)).
type SGDClassifier struct {
	Alpha         float64
	Tol           float64
	MaxIter       int
	NIterNoChange int
	Seed          uint64

	Coef      []float64
	Intercept float64
	NIter     int
}

// NewSGDClassifier создает классификатор с параметрами по умолчанию
func NewSGDClassifier(seed uint64) *SGDClassifier {
	return &SGDClassifier{
		Alpha:         DefaultAlpha,
		Tol:           DefaultTol,
		MaxIter:       DefaultMaxIter,
		NIterNoChange: DefaultNIterNoChange,
		Seed:          seed,
	}
}

// Fit обучает классификатор; y содержит метки 0/1.
// Порядок обхода строк перемешивается каждую эпоху источником, созданным из Seed.
func (c *SGDClassifier) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("cannot fit classifier on empty data")
	}
	if len(X) != len(y) {
		return fmt.Errorf("X has %d rows but y has %d labels", len(X), len(y))
	}
	if c.Alpha <= 0 {
		return fmt.Errorf("alpha must be positive, got %v", c.Alpha)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("max_iter must be positive, got %d", c.MaxIter)
	}

	positives := 0
	for i, label := range y {
		if label != 0 && label != 1 {
			return fmt.Errorf("label %d must be 0 or 1, got %v", i, label)
		}
		if label == 1 {
			positives++
		}
	}
	if positives == 0 || positives == len(y) {
		return errors.New("training data must contain both classes")
	}

	n, d := len(X), len(X[0])
	for i, row := range X {
		if len(row) != d {
			return fmt.Errorf("row %d has %d features, expected %d", i, len(row), d)
		}
	}

	w := make([]float64, d)
	b := 0.0
	rng := rand.New(rand.NewPCG(c.Seed, c.Seed))

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	// Начальный шаг по эвристике Bottou
	typw := math.Sqrt(1.0 / math.Sqrt(c.Alpha))
	eta0 := typw / math.Max(1.0, logLossDeriv(-typw, 1.0))
	optimalInit := 1.0 / (eta0 * c.Alpha)

	t := 1.0
	bestLoss := math.Inf(1)
	noImprovement := 0
	c.NIter = 0

	for epoch := 0; epoch < c.MaxIter; epoch++ {
		rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

		sumLoss := 0.0
		for _, i := range order {
			yi := 2*y[i] - 1
			p := floats.Dot(w, X[i]) + b
			sumLoss += logLoss(p, yi)

			eta := 1.0 / (c.Alpha * (optimalInit + t - 1))
			dloss := math.Max(-maxDLoss, math.Min(maxDLoss, logLossDeriv(p, yi)))
			update := -eta * dloss

			floats.Scale(math.Max(0, 1-eta*c.Alpha), w)
			if update != 0 {
				floats.AddScaled(w, update, X[i])
				b += update
			}
			t++
		}
		c.NIter = epoch + 1

		if math.IsNaN(sumLoss) || math.IsInf(sumLoss, 0) {
			return errors.New("loss diverged during training")
		}

		if sumLoss > bestLoss-c.Tol*float64(n) {
			noImprovement++
		} else {
			noImprovement = 0
		}
		if sumLoss < bestLoss {
			bestLoss = sumLoss
		}
		if noImprovement >= c.NIterNoChange {
			break
		}
	}

	if c.NIter == c.MaxIter {
		log.Printf("Warning: SGD reached max_iter=%d without converging", c.MaxIter)
	}

	c.Coef = w
	c.Intercept = b
	return nil
}

// IsFitted сообщает, обучен ли классификатор
func (c *SGDClassifier) IsFitted() bool {
	return c.Coef != nil
}

// DecisionFunction возвращает w·x + b
func (c *SGDClassifier) DecisionFunction(x []float64) float64 {
	return floats.Dot(c.Coef, x) + c.Intercept
}

// Predict возвращает метки 0/1
func (c *SGDClassifier) Predict(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		if c.DecisionFunction(row) > 0 {
			out[i] = 1
		}
	}
	return out
}

// logLoss - log(1+exp(-y*p)) с защитой от переполнения
func logLoss(p, y float64) float64 {
	z := p * y
	if z > 18 {
		return math.Exp(-z)
	}
	if z < -18 {
		return -z
	}
	return math.Log1p(math.Exp(-z))
}

// logLossDeriv - производная logLoss по p
func logLossDeriv(p, y float64) float64 {
	z := p * y
	if z > 18 {
		return -y * math.Exp(-z)
	}
	if z < -18 {
		return -y
	}
	return -y / (math.Exp(z) + 1)
}
