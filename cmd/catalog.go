package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/wct/webcams"
)

// newAPICommand builds a command that requires a configured client
func newAPICommand(use, short string, args cobra.PositionalArgs, run func(cmd *cobra.Command, args []string) apiCall) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Args:    args,
		PreRunE: initializeApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPI(cmd, run(cmd, args))
		},
	}
}

func addPagingFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Int("per-page", webcams.DefaultPerPage, "results per page")
	cmd.Flags().Int("page", webcams.DefaultPage, "page of results to return")
	return cmd
}

func parseFloats(args []string, names ...string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", names[i], arg, err)
		}
		values[i] = v
	}
	return values, nil
}

// failed returns an apiCall that reports err without calling the API
func failed(err error) apiCall {
	return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
		return nil, err
	}
}

var profileCmd = newAPICommand("profile USERID", "Get the profile of a user", cobra.ExactArgs(1),
	func(cmd *cobra.Command, args []string) apiCall {
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.GetProfile(ctx, args[0], opts...)
		}
	})

var favoritesCmd = addPagingFlags(newAPICommand("favorites USERID", "List the favorite webcams of a user", cobra.ExactArgs(1),
	func(cmd *cobra.Command, args []string) apiCall {
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.ListFavoriteWebcams(ctx, args[0], opts...)
		}
	}))

var webcamCmd = newAPICommand("webcam WEBCAMID", "Get the details of a webcam", cobra.ExactArgs(1),
	func(cmd *cobra.Command, args []string) apiCall {
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.GetDetails(ctx, args[0], opts...)
		}
	})

var webcamsCmd = newAPICommand("webcams WEBCAMID[,WEBCAMID...]...", "Get the details of several webcams", cobra.MinimumNArgs(1),
	func(cmd *cobra.Command, args []string) apiCall {
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.GetDetailsMultiple(ctx, strings.Join(args, ","), opts...)
		}
	})

var commentsCmd = addPagingFlags(newAPICommand("comments WEBCAMID", "List the comments on a webcam", cobra.ExactArgs(1),
	func(cmd *cobra.Command, args []string) apiCall {
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.ListComments(ctx, args[0], opts...)
		}
	}))

var nearbyCmd = addPagingFlags(newAPICommand("nearby LAT LNG", "List webcams close to a coordinate", cobra.ExactArgs(2),
	func(cmd *cobra.Command, args []string) apiCall {
		coords, err := parseFloats(args, "latitude", "longitude")
		if err != nil {
			return failed(err)
		}
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.ListNearby(ctx, coords[0], coords[1], opts...)
		}
	}))

var tagCmd = addPagingFlags(newAPICommand("tag TAG", "List webcams carrying a tag", cobra.ExactArgs(1),
	func(cmd *cobra.Command, args []string) apiCall {
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.ListByTag(ctx, args[0], opts...)
		}
	}))

var byUserCmd = addPagingFlags(newAPICommand("by-user USERID", "List the webcams of a user", cobra.ExactArgs(1),
	func(cmd *cobra.Command, args []string) apiCall {
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.ListByUser(ctx, args[0], opts...)
		}
	}))

var continentCmd = addPagingFlags(newAPICommand("continent CODE", "List webcams on a continent (AF, AN, AS, EU, NA, OC, SA)", cobra.ExactArgs(1),
	func(cmd *cobra.Command, args []string) apiCall {
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.ListByContinent(ctx, args[0], opts...)
		}
	}))

var countryCmd = addPagingFlags(newAPICommand("country CODE", "List webcams in a country (ISO 3166-1 alpha-2)", cobra.ExactArgs(1),
	func(cmd *cobra.Command, args []string) apiCall {
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.ListByCountry(ctx, args[0], opts...)
		}
	}))

var randomCmd = newAPICommand("random", "Return random webcams", cobra.NoArgs,
	func(cmd *cobra.Command, args []string) apiCall {
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.ListRandom(ctx, opts...)
		}
	})

var bboxCmd = newAPICommand("bbox SW_LAT SW_LNG NE_LAT NE_LNG ZOOM", "List webcams inside a map bounding box", cobra.ExactArgs(5),
	func(cmd *cobra.Command, args []string) apiCall {
		corners, err := parseFloats(args[:4], "sw_lat", "sw_lng", "ne_lat", "ne_lng")
		if err != nil {
			return failed(err)
		}
		zoom, err := strconv.Atoi(args[4])
		if err != nil {
			return failed(fmt.Errorf("invalid zoom %q: %w", args[4], err))
		}
		box := webcams.BBox{SWLat: corners[0], SWLng: corners[1], NELat: corners[2], NELng: corners[3]}
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.MapBBox(ctx, box, zoom, opts...)
		}
	})

var countriesCmd = newAPICommand("countries", "List the countries known to webcams.travel", cobra.NoArgs,
	func(cmd *cobra.Command, args []string) apiCall {
		return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			return client.ListCountries(ctx, opts...)
		}
	})

// searchCmd groups the search operations
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search webcams, users or tags",
}

// listings without required arguments
var listings = []struct {
	use   string
	short string
	call  func(ctx context.Context, opts ...webcams.CallOption) (webcams.Payload, error)
}{
	{"new", "List the newest webcams", func(ctx context.Context, opts ...webcams.CallOption) (webcams.Payload, error) {
		return client.ListNew(ctx, opts...)
	}},
	{"recent", "List recently updated webcams", func(ctx context.Context, opts ...webcams.CallOption) (webcams.Payload, error) {
		return client.ListRecent(ctx, opts...)
	}},
	{"popular", "List the most popular webcams", func(ctx context.Context, opts ...webcams.CallOption) (webcams.Payload, error) {
		return client.ListPopular(ctx, opts...)
	}},
	{"timelapse", "List webcams with a timelapse", func(ctx context.Context, opts ...webcams.CallOption) (webcams.Payload, error) {
		return client.ListTimelapse(ctx, opts...)
	}},
}

// searches maps search subcommands to their operation
var searches = []struct {
	use   string
	short string
	call  func(ctx context.Context, query string, opts ...webcams.CallOption) (webcams.Payload, error)
}{
	{"webcams QUERY...", "Search webcams", func(ctx context.Context, query string, opts ...webcams.CallOption) (webcams.Payload, error) {
		return client.SearchWebcams(ctx, query, opts...)
	}},
	{"users QUERY...", "Search users", func(ctx context.Context, query string, opts ...webcams.CallOption) (webcams.Payload, error) {
		return client.SearchUsers(ctx, query, opts...)
	}},
	{"tags QUERY...", "Search tags", func(ctx context.Context, query string, opts ...webcams.CallOption) (webcams.Payload, error) {
		return client.SearchTags(ctx, query, opts...)
	}},
}

func init() {
	nearbyCmd.Flags().Float64("radius", webcams.DefaultRadius, "search radius")
	nearbyCmd.Flags().String("unit", webcams.DefaultRadiusUnit, "radius unit (deg, km, mi)")

	randomCmd.Flags().Int("limit", webcams.DefaultLimit, "number of webcams to return")
	randomCmd.Flags().String("type", webcams.DefaultRandomType, "webcam type")

	bboxCmd.Flags().String("mapapi", webcams.DefaultMapAPI, "map provider")

	rootCmd.AddCommand(
		profileCmd,
		favoritesCmd,
		webcamCmd,
		webcamsCmd,
		commentsCmd,
		nearbyCmd,
		tagCmd,
		byUserCmd,
		continentCmd,
		countryCmd,
		randomCmd,
		bboxCmd,
		countriesCmd,
		searchCmd,
	)

	for _, l := range listings {
		l := l // per-iteration copy; go directive predates Go 1.22 loopvar semantics
		rootCmd.AddCommand(addPagingFlags(newAPICommand(l.use, l.short, cobra.NoArgs,
			func(cmd *cobra.Command, args []string) apiCall {
				return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
					return l.call(ctx, opts...)
				}
			})))
	}

	for _, s := range searches {
		s := s // per-iteration copy; go directive predates Go 1.22 loopvar semantics
		searchCmd.AddCommand(addPagingFlags(newAPICommand(s.use, s.short, cobra.MinimumNArgs(1),
			func(cmd *cobra.Command, args []string) apiCall {
				query := strings.Join(args, " ")
				return func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
					return s.call(ctx, query, opts...)
				}
			})))
	}
}
