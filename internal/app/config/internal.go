package config

type InternalConfig struct {
	App App
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	StaticDir                  string
	MaxRequests                int
	ShutdownTimeout            int
	RequestBodyLimitInMegabyte int
}
