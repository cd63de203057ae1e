package ui

import (
	"github.com/reenas3520-oss/yahoooo-study/chat"
	"github.com/reenas3520-oss/yahoooo-study/dispatch"
	"github.com/reenas3520-oss/yahoooo-study/internal/store"
	"github.com/reenas3520-oss/yahoooo-study/speech"
	"github.com/reenas3520-oss/yahoooo-study/study"
)

// App bundles the long-lived services the UI drives. The UI owns none of
// them; main wires them up and shuts them down.
type App struct {
	Store      *store.Store
	Generator  *study.Generator
	Chat       *chat.Accumulator
	Speech     *speech.Controller
	Dispatcher *dispatch.Dispatcher
}
