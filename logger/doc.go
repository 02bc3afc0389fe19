// Package logger provides zerolog-backed structured logging for restkit.
//
// The client library logs through a *Logger handed to it at construction;
// Nop() returns a silent logger so that embedding applications which do not
// care about client internals pay nothing.
//
//	log := logger.NewDefault("orders-api")
//	log.Info("request sent", logger.Fields(
//	    logger.FieldMethod, "POST",
//	    logger.FieldPath, "/orders",
//	))
package logger
