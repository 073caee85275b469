package provider

// Keep abc
type Providers interface {
	ErrorLogger() ErrorLogger
	InitSurvey() InitSurvey
}
