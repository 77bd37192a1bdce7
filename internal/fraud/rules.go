package fraud

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

const (
	LargeAmountThreshold = 8000.0 // Порог крупной суммы
	BusinessHourStart    = 6      // Операции до 06:00 считаются ночными
	BusinessHourEnd      = 20     // Операции после 20:59 считаются ночными
	RiskyEntityShare     = 0.03   // Доля транзакций от известных рисковых контрагентов
)

// RiskyEntities - известные рисковые контрагенты; транзакции от них всегда подозрительны
var RiskyEntities = []string{"ENTITY_X", "ENTITY_Y", "ENTITY_Z"}

// SuspiciousExpression - правило разметки для обычных клиентов:
// зарубежная операция на крупную сумму в нерабочее время
var SuspiciousExpression = fmt.Sprintf(
	"is_foreign && amount > %.1f && (hour < %d || hour > %d)",
	LargeAmountThreshold, BusinessHourStart, BusinessHourEnd,
)

// LabelingRule - скомпилированное CEL правило разметки
type LabelingRule struct {
	program cel.Program
}

// NewLabelingRule компилирует правило разметки
func NewLabelingRule() (*LabelingRule, error) {
	env, err := cel.NewEnv(
		cel.Variable("amount", cel.DoubleType),
		cel.Variable("is_foreign", cel.BoolType),
		cel.Variable("hour", cel.IntType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(SuspiciousExpression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("labeling rule must return bool, got %v", ast.OutputType())
	}

	prog, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program creation error: %w", err)
	}

	return &LabelingRule{program: prog}, nil
}

// IsSuspicious применяет правило к одной транзакции обычного клиента
func (r *LabelingRule) IsSuspicious(amount float64, isForeign bool, hour int) (bool, error) {
	out, _, err := r.program.Eval(map[string]any{
		"amount":     amount,
		"is_foreign": isForeign,
		"hour":       int64(hour),
	})
	if err != nil {
		return false, fmt.Errorf("failed to evaluate labeling rule: %w", err)
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("labeling rule returned %T", out.Value())
	}
	return matched, nil
}

// IsRiskyEntity проверяет, является ли контрагент известным рисковым
func IsRiskyEntity(origin string) bool {
	for _, entity := range RiskyEntities {
		if entity == origin {
			return true
		}
	}
	return false
}
