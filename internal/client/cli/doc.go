// Package cli provides the interactive userdeck command-line client.
//
// It wires configuration, the backend API client, the directory and profile
// stores, and an interactive REPL with two screens:
//
//	users    - paginated listing with create / edit / delete and paging
//	profile  - one user's profile with field editing and image upload
//
// Key commands:
//   - list / next / prev    - browse the directory
//   - add / edit / del      - mutate users (password prompted without echo)
//   - open <row|id>         - switch to the profile screen
//   - pick / upload / drop  - select, preview and commit a profile image
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
