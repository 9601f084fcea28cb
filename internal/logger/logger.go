package logger

import (
	"go.uber.org/zap"
)

var log *zap.Logger

func Init() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	log = l
	return l
}

// L devolve o logger global (inicializa um no-op se Init não foi chamado,
// útil em testes)
func L() *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
