package validator

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"resource-converter/internal/domain"
)

var validDBTypes = func() []interface{} {
	types := make([]interface{}, len(domain.ValidDBTypes))
	for i, t := range domain.ValidDBTypes {
		types[i] = t
	}
	return types
}()

// Validator provides validation methods for requests and profiles.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateConnection validates the fields needed to open a database connection.
func (v *Validator) ValidateConnection(c *domain.ConnectionConfig) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DBType,
			validation.Required.Error("db_type_required"),
			validation.In(validDBTypes...).Error("unsupported_db_type"),
		),
		validation.Field(&c.Host,
			validation.When(c.DBType != domain.DBTypeSQLite,
				validation.Required.Error("host_required"),
			),
		),
		validation.Field(&c.Port,
			validation.Min(0).Error("invalid_port"),
			validation.Max(65535).Error("invalid_port"),
		),
		validation.Field(&c.DBName,
			validation.Required.Error("db_name_required"),
		),
	)
}

// ValidateProfile validates a full connection profile including its name and
// language labels.
func (v *Validator) ValidateProfile(p *domain.ConnectionProfile) error {
	if err := validation.ValidateStruct(p,
		validation.Field(&p.Name,
			validation.Required.Error("name_required"),
			validation.By(notBlank("name_required")),
		),
		validation.Field(&p.LanguageMap,
			validation.By(slotKeys),
		),
	); err != nil {
		return err
	}
	return v.ValidateConnection(&p.ConnectionConfig)
}

// ValidateFetch validates a paged fetch request.
func (v *Validator) ValidateFetch(r *domain.FetchRequest) error {
	if err := v.ValidateConnection(&r.ConnectionConfig); err != nil {
		return err
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.Page, validation.Min(0).Error("invalid_page")),
		validation.Field(&r.Size, validation.Min(0).Error("invalid_size")),
	)
}

// ValidateIDs validates a fetch-all-IDs request.
func (v *Validator) ValidateIDs(r *domain.IDsRequest) error {
	return v.ValidateConnection(&r.ConnectionConfig)
}

// ValidateByIDs validates a fetch-by-IDs request.
func (v *Validator) ValidateByIDs(r *domain.ByIDsRequest) error {
	if err := v.ValidateConnection(&r.DBConfig); err != nil {
		return err
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.ObjectIDs,
			validation.Each(validation.Required.Error("object_id_required")),
		),
	)
}

// ValidateLabelDownload validates a properties download request.
func (v *Validator) ValidateLabelDownload(r *domain.LabelDownloadRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Labels, validation.NotNil.Error("labels_required")),
		validation.Field(&r.Lang, validation.By(slotRule)),
	)
}

// ValidateErrorDownload validates an XML download request.
func (v *Validator) ValidateErrorDownload(r *domain.ErrorDownloadRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Messages, validation.NotNil.Error("messages_required")),
		validation.Field(&r.Lang, validation.By(slotRule)),
	)
}

// ValidateSlot checks a single language slot key.
func (v *Validator) ValidateSlot(s domain.Slot) error {
	return slotRule(s)
}

func slotRule(value interface{}) error {
	s, ok := value.(domain.Slot)
	if !ok || s == "" {
		return nil
	}
	if !domain.IsValidSlot(s) {
		return validation.NewError("unknown_slot", domain.ErrUnknownSlot.Error())
	}
	return nil
}

func slotKeys(value interface{}) error {
	m, ok := value.(map[domain.Slot]string)
	if !ok {
		return nil
	}
	for slot := range m {
		if !domain.IsValidSlot(slot) {
			return validation.NewError("unknown_slot", domain.ErrUnknownSlot.Error()+": "+string(slot))
		}
	}
	return nil
}

func notBlank(code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if ok && s != "" && strings.TrimSpace(s) == "" {
			return validation.NewError(code, "cannot be blank")
		}
		return nil
	}
}

// FieldErrors flattens ozzo validation errors into field -> message pairs.
// Non-validation errors are reported under "request".
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if errors.As(err, &ve) {
		out := make(map[string]string, len(ve))
		for field, fieldErr := range ve {
			out[field] = fieldErr.Error()
		}
		return out
	}
	return map[string]string{"request": err.Error()}
}
