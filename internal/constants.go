package internal

const (
	COOKIE_VISITOR_NAME = "h2h_visitor"
	COOKIE_FLASH_NAME   = "h2h_trial_flash"
)
