package commands

const (
	_etc = "/usr/local/etc/com.github.drive-sheets"
	_var = "/usr/local/var/com.github.drive-sheets"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
