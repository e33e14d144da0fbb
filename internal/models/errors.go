package models

import "errors"

var (
	// ErrMalformedRecord - запись журнала не удалось разобрать; такая запись пропускается при загрузке
	ErrMalformedRecord = errors.New("malformed record")
	// ErrDurableWrite - не удалось записать инцидент в журнал
	ErrDurableWrite = errors.New("durable write failed")

	ErrInvalidRadius   = errors.New("invalid radius")
	ErrInvalidWindow   = errors.New("invalid time window")
	ErrInvalidPoint    = errors.New("invalid point")
	ErrInvalidSeverity = errors.New("invalid severity")
	ErrInvalidSource   = errors.New("invalid source")
	ErrInvalidKind     = errors.New("invalid safe location kind")
)
