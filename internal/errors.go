package internal

import "errors"

var (
	ErrUnknownProfile  = errors.New("hijri: unknown adjustment profile")
	ErrInvalidProfiles = errors.New("hijri: invalid adjustment profiles")
	ErrInvalidLocale   = errors.New("hijri: invalid locale")
	ErrInvalidLayout   = errors.New("hijri: unknown layout preset")
)
