// Package logx configures the timer's structured logging.
//
// logx.Logger is a small value type on top of zerolog:
//   - console output is human readable (short timestamp + short caller)
//   - the optional file sink is JSON
//   - the zero value and Nop() are safe no-op loggers
package logx
