package commands

const (
	_etc = "/usr/local/etc/com.github.uhppoted/gsheets-append"

	DEFAULT_CONFIG      = _etc + "/gsheets-append.yaml"
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
