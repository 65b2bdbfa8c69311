package commands

const (
	_etc = "/usr/local/etc/drive-sheets"
	_var = "/usr/local/var/drive-sheets"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
