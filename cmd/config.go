package main

import "time"

type Config struct {
	Host           string        `env:"GAME_HOST,default=localhost" validate:"required"`
	Port           int           `env:"GAME_PORT,default=13050" validate:"min=1,max=65535"`
	Reservation    string        `env:"GAME_RESERVATION"`
	LogLevel       string        `env:"LOG_LEVEL,default=info" validate:"required"`
	CloseGrace     time.Duration `env:"CLOSE_GRACE,default=2s"`
	BadgerFilepath string        `env:"BADGER_FILEPATH"`
	DebugReader    bool          `env:"DEBUG_READER,default=false"`
	DebugWriter    bool          `env:"DEBUG_WRITER,default=false"`
}
