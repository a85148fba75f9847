package app

import "github.com/sirupsen/logrus"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home   string         // take directory, e.g. $HOME/.midiwire
	HubURL string         // hub base URL, e.g. http://127.0.0.1:8080
	Log    *logrus.Logger // optional; defaults to a quiet logger
}
