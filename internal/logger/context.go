package logger

// Component-specific logger functions

// Schema returns a logger for table block parsing
func Schema() Logger {
	return WithField("component", "schema")
}

// Render returns a logger for procedure rendering
func Render() Logger {
	return WithField("component", "render")
}

// Editor returns a logger for editor buffer operations
func Editor() Logger {
	return WithField("component", "editor")
}

// CLI returns a logger for CLI operations
func CLI() Logger {
	return WithField("component", "cli")
}

// DB returns a logger for database introspection
func DB() Logger {
	return WithField("component", "db")
}
