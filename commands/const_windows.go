package commands

const (
	_etc = `C:\ProgramData\gsheets-append`

	DEFAULT_CONFIG      = _etc + `\gsheets-append.yaml`
	DEFAULT_CREDENTIALS = _etc + `\.google\credentials.json`
)
