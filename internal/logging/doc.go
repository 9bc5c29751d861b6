// Package logger provides leveled logging for confgen commands.
//
// Output is prefixed with colored tags from fatih/color. Verbosity is
// controlled by the settings command's persistent flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Shown with --verbose or --debug
//	Logger.WarnfUser()      // Always shown, operator-facing
//	Logger.Errorf()         // Shown with --debug
//	Logger.ErrorfAndReturn  // Errorf, then returns the formatted error
//
// Only section and key names are ever logged. Entered values, the master
// secret and ciphertexts stay out of the log.
package logger
