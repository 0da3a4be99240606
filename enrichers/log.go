package enrichers

import "github.com/willibrandon/mtlog-xperience/internal/diag"

var (
	contactLog = diag.New("xperience-contact")
	channelLog = diag.New("xperience-channel")
	pageLog    = diag.New("xperience-page")
	webFarmLog = diag.New("xperience-webfarm")
)
