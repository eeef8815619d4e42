// server/config/config.go
package config

import (
	"github.com/spf13/viper"
)

// --- Sub-structs mirroring the YAML layout ---

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type StorageConfig struct {
	File      string `mapstructure:"file"`      // local JSON document, e.g. db.json
	RemoteURL string `mapstructure:"remoteURL"` // optional hosted JSON store (bin URL)
	RemoteKey string `mapstructure:"remoteKey"` // secret key for the remote store
}

type UploadsConfig struct {
	Mode    string `mapstructure:"mode"` // "local", "local-url" or "s3"
	Dir     string `mapstructure:"dir"`
	BaseURL string `mapstructure:"baseURL"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

type JWTConfig struct {
	Secret  string `mapstructure:"secret"`
	Enforce bool   `mapstructure:"enforce"` // guard admin mutation routes with Bearer tokens
}

type EmailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

type StaticConfig struct {
	AdminDir    string `mapstructure:"adminDir"`
	FrontendDir string `mapstructure:"frontendDir"`
}

type LoggerConfig struct {
	Mode       string `mapstructure:"mode"` // "production" or "development"
	FileEnable bool   `mapstructure:"fileEnable"`
	Filename   string `mapstructure:"filename"`
}

// --- Root config struct ---

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Uploads UploadsConfig `mapstructure:"uploads"`
	S3      S3Config      `mapstructure:"s3"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Email   EmailConfig   `mapstructure:"email"`
	Admin   AdminConfig   `mapstructure:"admin"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Static  StaticConfig  `mapstructure:"static"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

// LoadConfig reads config.yaml from path and overrides values with
// environment variables. A missing file is fine; env vars alone are enough.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("storage.file", "DB_FILE")
	viper.BindEnv("storage.remoteURL", "REMOTE_DB_URL")
	viper.BindEnv("storage.remoteKey", "REMOTE_DB_KEY")
	viper.BindEnv("uploads.mode", "UPLOADS_MODE")
	viper.BindEnv("uploads.dir", "UPLOADS_DIR")
	viper.BindEnv("uploads.baseURL", "UPLOADS_BASE_URL")
	viper.BindEnv("s3.bucket", "S3_BUCKET")
	viper.BindEnv("s3.region", "S3_REGION")
	viper.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	viper.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	viper.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("jwt.enforce", "JWT_ENFORCE")
	viper.BindEnv("email.host", "EMAIL_SERVER")
	viper.BindEnv("email.port", "EMAIL_PORT")
	viper.BindEnv("email.user", "EMAIL_USER")
	viper.BindEnv("email.password", "EMAIL_PASSWORD")
	viper.BindEnv("email.from", "EMAIL_FROM")
	viper.BindEnv("admin.email", "ADMIN_EMAIL")
	viper.BindEnv("admin.password", "ADMIN_PASSWORD")

	// Defaults matching the standalone deployment.
	viper.SetDefault("server.port", "8000")
	viper.SetDefault("storage.file", "db.json")
	viper.SetDefault("uploads.mode", "local")
	viper.SetDefault("uploads.dir", "uploads/images")
	viper.SetDefault("uploads.baseURL", "/uploads/images")
	viper.SetDefault("email.host", "smtp.gmail.com")
	viper.SetDefault("email.port", 587)
	viper.SetDefault("static.adminDir", "admin")
	viper.SetDefault("static.frontendDir", "public")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("cors.allowedOrigins", []string{
		"http://localhost:8000",
		"http://127.0.0.1:8000",
	})

	err = viper.ReadInConfig()
	if err != nil {
		// Only fail when the error is something other than "file not found".
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return
}
