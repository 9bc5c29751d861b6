// Package prompt abstracts the interactive console behind the Prompter interface.
//
// Workflows never touch stdin directly. They receive a Prompter with two
// operations, AskVisible for plain values and AskMasked for sensitive ones,
// so the generation workflow can be driven by a Scripted prompter in tests.
package prompt
