// Package cli provides the interactive LetsTalk terminal client.
//
// It wires the account, ledger and graph services to a small REPL. A new
// member signs up, answers one of the welcome posts to finish onboarding and
// then earns response credits by answering friends' posts; each credit buys
// one post of their own.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command list.
package cli
