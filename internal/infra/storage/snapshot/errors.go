package snapshot

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации снапшота
	ErrEncode = errors.New("snapshot.store: failed to encode snapshot")

	// ErrWrite возвращается при ошибке записи файла снапшота
	ErrWrite = errors.New("snapshot.store: failed to write snapshot file")
)
