package webcams

// Method identifiers of the remote operations
const (
	MethodGetProfile          = "wct.users.get_profile"
	MethodListFavoriteWebcams = "wct.users.list_favorite_webcams"

	MethodGetDetails         = "wct.webcams.get_details"
	MethodGetDetailsMultiple = "wct.webcams.get_details_multiple"
	MethodListComments       = "wct.webcams.list_comments"
	MethodListNearby         = "wct.webcams.list_nearby"
	MethodListByTag          = "wct.webcams.list_by_tag"
	MethodListByUser         = "wct.webcams.list_by_user"
	MethodListByContinent    = "wct.webcams.list_by_continent"
	MethodListByCountry      = "wct.webcams.list_by_country"
	MethodListNew            = "wct.webcams.list_new"
	MethodListRecent         = "wct.webcams.list_recent"
	MethodListPopular        = "wct.webcams.list_popular"
	MethodListRandom         = "wct.webcams.list_random"
	MethodListTimelapse      = "wct.webcams.list_timelapse"

	MethodSearchWebcams = "wct.search.webcams"
	MethodSearchUsers   = "wct.search.users"
	MethodSearchTags    = "wct.search.tags"

	MethodMapBBox       = "wct.map.bbox"
	MethodListCountries = "wct.countries.list"
)

// Defaults applied when the caller does not set the parameter
const (
	DefaultPerPage    = 10
	DefaultPage       = 1
	DefaultRadius     = 0.2
	DefaultRadiusUnit = "deg"
	DefaultLimit      = 1
	DefaultRandomType = "all"
	DefaultMapAPI     = "google"
)

// paged adds the default paging parameters
func paged(p *Params) *Params {
	return p.Set("per_page", DefaultPerPage).Set("page", DefaultPage)
}
