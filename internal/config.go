package internal

type Config struct {
	Host                 string `env:"BIND_HOST,default=0.0.0.0"`
	Port                 int    `env:"PORT,default=50051"`
	ConnectionBufferSize int    `env:"CONNECTION_BUFFER_SIZE,default=100"`
	LogLevel             string `env:"LOG_LEVEL,default=INFO"`
}
