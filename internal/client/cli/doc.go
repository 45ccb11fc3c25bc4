// Package cli provides the interactive blog platform command-line client.
//
// It wires configuration, the local cache, the REST gateway services, and an
// interactive REPL that maps commands to user intents. Typical flow: restore
// the session from the server cookie jar, then execute user commands.
//
// Key features:
//   - Login / Register / Logout (LDAP and local accounts)
//   - Email and phone verification via one-time passwords
//   - Browse, create, edit, and delete blogs
//   - Comment, reply, and moderate own comments
//   - Notification preferences and password recovery
//   - AI-assisted content generation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
