// Package config loads and validates matter's configuration.
//
// Configuration is read from config.yaml in the current directory or in
// $XDG_CONFIG_HOME/matter/, with MATTER_* environment variables taking
// precedence. All keys have working defaults, so a missing config file is
// not an error.
//
// The interesting keys:
//
//	taxonomy.tags:        tag vocabulary offered by the picker
//	taxonomy.categories:  category vocabulary
//	date.format:          token date format (YYYY-MM-DD); empty = native timestamps
//	slug.prefix/suffix:   concatenated around generated slugs
//	save.create_date:     stamp the created field on save if absent
//	save.update_modified: stamp the modified field on every save
//	fields.created:       created field name (default "date")
//	fields.modified:      modified field name (default "lastmod")
//	backup.enabled:       back up files before rewriting in place
package config
