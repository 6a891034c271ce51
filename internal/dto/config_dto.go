package dto

type ActualizarConfigRequest struct {
	SiteName          *string `json:"siteName"          validate:"omitempty,min=1,max=100"`
	BrandColorPrimary *string `json:"brandColorPrimary" validate:"omitempty,hexcolor"`
	LogoURL           *string `json:"logoUrl"`
	ContactInfo       *string `json:"contactInfo"`
	SocialInstagram   *string `json:"socialInstagram"`
	SocialTikTok      *string `json:"socialTikTok"`
	SocialWhatsApp    *string `json:"socialWhatsApp"`
	FeriaOnlineLink   *string `json:"feriaOnlineLink"`
	ShowroomAddress   *string `json:"showroomAddress"`
	IsFeriaModeActive *bool   `json:"isFeriaModeActive"`
}

type ConfigResponse struct {
	ID                string  `json:"id"`
	SiteName          string  `json:"siteName"`
	BrandColorPrimary string  `json:"brandColorPrimary"`
	LogoURL           *string `json:"logoUrl"`
	ContactInfo       *string `json:"contactInfo"`
	SocialInstagram   *string `json:"socialInstagram"`
	SocialTikTok      *string `json:"socialTikTok"`
	SocialWhatsApp    *string `json:"socialWhatsApp"`
	FeriaOnlineLink   *string `json:"feriaOnlineLink"`
	ShowroomAddress   *string `json:"showroomAddress"`
	IsFeriaModeActive bool    `json:"isFeriaModeActive"`
}
