package errors

import (
	"sort"
	"strings"
)

// ValidationError накапливает ошибки валидации по полям запроса.
//
// Используется сервисным слоем при регистрации: каждая проверка добавляет
// сообщение под именем своего поля, api слой отдаёт их клиенту как 422.
// errors.Is(err, ErrInvalidInput) возвращает true для любого ValidationError.
type ValidationError struct {
	// Fields: имя поля -> список сообщений об ошибках этого поля.
	Fields map[string][]string
}

// NewValidationError создаёт пустой ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add добавляет сообщение об ошибке для поля.
func (v *ValidationError) Add(field, msg string) {
	v.Fields[field] = append(v.Fields[field], msg)
}

// Empty сообщает, что ни одной ошибки не накоплено.
func (v *ValidationError) Empty() bool {
	return len(v.Fields) == 0
}

// Error собирает все сообщения в одну строку (поля в алфавитном порядке,
// чтобы текст ошибки был стабильным).
func (v *ValidationError) Error() string {
	fields := make([]string, 0, len(v.Fields))
	for f := range v.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var parts []string
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(v.Fields[f], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Is позволяет errors.Is(err, ErrInvalidInput) для ValidationError.
func (v *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
