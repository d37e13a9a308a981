// Package commands defines the xilo CLI.
//
// Commands
//
//   - init     Scaffold xilo.yaml, public/ and .gitignore
//   - dev      Serve the site with live rendering and browser reload
//   - build    Write the static artifact (pages, stylesheet, public files, manifest)
//   - start    Serve a previously built artifact
//   - lint     Check the config and the theme stylesheet
//   - doctor   Verify a build directory against its manifest
//
// The root command resolves the config source, terminal output and logger
// before any subcommand runs. Commands share a context that is cancelled on
// SIGINT or SIGTERM.
package commands
