package engine

// LoggingModule installs a DefaultLogger as a resource, matching the
// teacher engine's LoggingModule (logging.go) exactly in shape.
type LoggingModule struct {
	Prefix string
	Debug  bool
}

func (m LoggingModule) Install(app *App) {
	app.AddResource(Logger(NewDefaultLogger(m.Prefix, m.Debug)))
}
