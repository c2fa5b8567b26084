package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#7AA2F7"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorText      = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E5E5E5"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#D9480F", Dark: "#FF8C42"}
	colorError     = lipgloss.AdaptiveColor{Light: "#C92A2A", Dark: "#FF6B6B"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorActiveBdr = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#7AA2F7"}
	colorBadgeBg   = lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E2A4A"}
	colorSkeleton  = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#2A2A2A"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	headerRouteStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Align(lipgloss.Right)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	paneActiveStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorActiveBdr)

	itemTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	itemActiveStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	itemCategoryStyle = lipgloss.NewStyle().
				Foreground(colorPrimary)

	itemTimeStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	itemDescStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	skeletonStyle = lipgloss.NewStyle().
			Foreground(colorSkeleton)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	detailMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	detailDescStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Italic(true)

	detailCoverStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Italic(true)

	detailBodyStyle = lipgloss.NewStyle().
			Foreground(colorText)

	detailHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	detailQuoteStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorAccent).
				Foreground(colorSecondary).
				Italic(true).
				PaddingLeft(1)

	badgePrimaryStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Background(colorBadgeBg).
				Bold(true).
				Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Padding(0, 1)

	authorInitialsStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Background(colorBadgeBg).
				Bold(true).
				Padding(0, 1)

	authorNameStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	formLabelFocusStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	submitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1).
			Bold(true)

	submitDisabledStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	flashStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorActiveBdr).
			Padding(1, 3)
)
