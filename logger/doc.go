// Package logger provides structured logging for seqkit programs using
// zerolog.
//
// The lazy core never logs. Logging enters through the evaluation driver
// (pipeline.WithLogging), observability setup and the demo binary.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("seqdemo").WithComponent("pipeline")
//	log.Info("run finished", logger.Fields(logger.FieldElements, 5))
package logger
