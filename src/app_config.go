package main

import (
	"identity-market/pkg/logger"
	"identity-market/pkg/rabbitmq"
	"identity-market/src/engine"
)

type ApiConfigJson struct {
	LoggerConf   logger.LoggerConfigJson     `json:"logger"`
	RabbitmqConf rabbitmq.RabbitmqConfigJson `json:"rabbitmq"`
	RestConf     ApiRestConfigJson           `json:"rest"`
	DatabaseConf ApiDatabaseConfigJson       `json:"database"`
	EngineConf   engine.ConfigJson           `json:"engine"`
}

func (acj ApiConfigJson) ConvertToDomain() ApiConfig {
	return ApiConfig{
		LoggerConf:   acj.LoggerConf.ConvertToDomain(),
		RabbitmqConf: acj.RabbitmqConf.ConvertToDomain(),
		RestConf:     acj.RestConf.ConvertToDomain(),
		DatabaseConf: acj.DatabaseConf.ConvertToDomain(),
		EngineConf:   acj.EngineConf.ConvertToDomain(),
	}
}

type ApiConfig struct {
	LoggerConf   logger.LoggerConfig
	RabbitmqConf rabbitmq.RabbitmqConfig
	RestConf     ApiRestConfig
	DatabaseConf ApiDatabaseConfig
	EngineConf   engine.Config
}

func (ac ApiConfig) GetLoggerConfig() logger.LoggerConfig {
	return ac.LoggerConf
}

func (ac ApiConfig) GetRabbitmqConfig() rabbitmq.RabbitmqConfig {
	return ac.RabbitmqConf
}

func (ac ApiConfig) GetRestApiPort() uint16 {
	return ac.RestConf.Port
}

func (ac ApiConfig) GetDatabaseConnectionString() string {
	return ac.DatabaseConf.ConnectionString
}

func (ac ApiConfig) GetEngineConfig() engine.Config {
	return ac.EngineConf
}

type ApiRestConfigJson struct {
	Port uint16 `json:"port"`
}

type ApiRestConfig struct {
	Port uint16
}

func (arcj ApiRestConfigJson) ConvertToDomain() ApiRestConfig {
	return ApiRestConfig{
		Port: arcj.Port,
	}
}

type ApiDatabaseConfigJson struct {
	ConnectionString string `json:"connection_string"`
}

type ApiDatabaseConfig struct {
	ConnectionString string
}

func (adcj ApiDatabaseConfigJson) ConvertToDomain() ApiDatabaseConfig {
	return ApiDatabaseConfig{
		ConnectionString: adcj.ConnectionString,
	}
}
