package models

// NameValue is one entry of a ranking or chart series.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// InvitationStats summarizes the invitations collection
type InvitationStats struct {
	Total       int            `json:"total"`
	Outgoing    int            `json:"outgoing"`
	Incoming    int            `json:"incoming"`
	WithMessage int            `json:"withMessage"`
	Monthly     map[string]int `json:"monthly"` // "YYYY-MM" -> count, sparse
}

// JobStats summarizes the job postings collection
type JobStats struct {
	Total           int `json:"total"`
	Active          int `json:"active"` // Job State OPEN or LISTED
	Closed          int `json:"closed"`
	Draft           int `json:"draft"`
	UniqueCompanies int `json:"uniqueCompanies"`
}

// MessageStats summarizes the messages collection
type MessageStats struct {
	Total               int `json:"total"`
	Inbox               int `json:"inbox"`
	Sent                int `json:"sent"`
	Drafts              int `json:"drafts"`
	UniqueConversations int `json:"uniqueConversations"`
}

// RichMediaStats summarizes the rich media collection
type RichMediaStats struct {
	Total            int `json:"total"`
	ProfilePhotos    int `json:"profilePhotos"`
	FeedPhotos       int `json:"feedPhotos"`
	BackgroundPhotos int `json:"backgroundPhotos"`
}

// ConnectionStats summarizes the connections collection
type ConnectionStats struct {
	Total           int            `json:"total"`
	WithEmail       int            `json:"withEmail"`
	UniqueCompanies int            `json:"uniqueCompanies"`
	Monthly         map[string]int `json:"monthly"`
	TopCompanies    []NameValue    `json:"topCompanies"` // ordered, length <= 10
}

// Stats is the combined stats object served to the dashboard, keyed by kind.
// @Description Combined per-kind statistics
type Stats struct {
	Invitations InvitationStats `json:"invitations"`
	Jobs        JobStats        `json:"jobs"`
	Messages    MessageStats    `json:"messages"`
	RichMedia   RichMediaStats  `json:"richMedia"`
	Connections ConnectionStats `json:"connections"`
}
