// Package logging builds the slog logger used across inkwell commands.
// Console output targets a human at a terminal; the json format exists for
// shell pipelines and log scrapers.
package logging
