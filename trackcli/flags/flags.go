package flags

type RootCmdFlags struct {
	ConfigPath string
	Debug      bool
	Domain     string
	EnvFile    string
	Secure     bool
}
