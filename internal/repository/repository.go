package repository

import "errors"

// ErrNotFound — запись с таким идентификатором отсутствует.
var ErrNotFound = errors.New("record not found")
