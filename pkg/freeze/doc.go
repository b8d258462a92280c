// Package freeze implements the pipeline that turns a Python script into a
// standalone executable: install build deps, clean the workspace, invoke the
// packaging tool, verify its output and publish the final artifact.
package freeze
