package kardex

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/kardex-textil/internal/application/dto"
	"github.com/jhoicas/kardex-textil/internal/domain"
	"github.com/jhoicas/kardex-textil/internal/domain/entity"
)

// ValidationError detalla qué campos del formulario no pasaron la validación.
// Se compara con errors.Is(err, domain.ErrInvalidInput).
type ValidationError struct {
	Fields map[string]string // campo json → regla incumplida
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k, v := range e.Fields {
		names = append(names, k+"="+v)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", domain.ErrInvalidInput, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("product_type", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseProductType(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("size", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseSize(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("movement_type", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseMovementType(fl.Field().String())
		return ok
	})
	return v
}

// FieldsFromRequest valida el formulario de captura y lo convierte en campos de dominio.
// Una cantidad que no sea entero positivo o un enum desconocido no produce ningún cambio.
func FieldsFromRequest(in dto.MovementRequest) (entity.MovementFields, error) {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return entity.MovementFields{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return entity.MovementFields{}, &ValidationError{Fields: fields}
	}
	p, _ := entity.ParseProductType(in.ProductType)
	s, _ := entity.ParseSize(in.Size)
	t, _ := entity.ParseMovementType(in.Type)
	return entity.MovementFields{
		ProductType: p,
		Size:        s,
		Type:        t,
		Quantity:    in.Quantity,
		Notes:       strings.TrimSpace(in.Notes),
	}, nil
}
