package config

type (
	DriverConfig struct {
		Postgres Postgres
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	Postgres struct {
		Host                     string
		Port                     string
		Username                 string
		Password                 string
		DBName                   string
		SSLMode                  string
		MaxOpenConns             int
		MaxIdleConns             int
		ConnMaxLifetimeInMinutes int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host                 string
		Port                 string
		Username             string
		Password             string
		VHost                string
		ConnectionName       string
		HeartbeatInSeconds   int
		DialTimeoutInSeconds int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App      App
		JWT      JWT
		RabbitMQ AppRabbitMQ
	}

	App struct {
		Env                         string
		Port                        string
		Version                     string
		EndpointPrefix              string
		MaxRequests                 int
		ShutdownTimeoutInSeconds    int
		RequestTimeoutInSeconds     int
		TransactionTimeoutInSeconds int
		ScheduleTimezone            string
		SuperadminAPIKey            string
		LoginRateLimit              int
		LoginBlockTimeInMinutes     int
		RunMigration                bool
		MigrationDir                string
		SlotWorkerEnabled           bool
		SlotWorkerCronSpec          string
		SlotWorkerDayStart          string
		SlotWorkerDayEnd            string
		SlotWindowDays              int
	}

	JWT struct {
		AccessSecret        string
		RefreshSecret       string
		AccessExpTimeInHour int
		RefreshExpTimeInDay int
	}

	AppRabbitMQ struct {
		AppointmentQueue string
	}
)
