package mapping

import (
	"github.com/c360studio/footballgraph/vocabulary/football"
	"github.com/c360studio/footballgraph/vocabulary/xsd"
)

// DefaultRegistry returns the registry over the built-in football mappings,
// minting instance IRIs under the football entity namespace.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(football.EntityNamespace, DefaultMappings())
}

// DefaultMappings returns the built-in projection rules for the football
// schema. Field names follow the relational column names as they appear in
// change-event payloads; foreign keys use the _id suffix and map to
// reference properties.
func DefaultMappings() []EntityMapping {
	return []EntityMapping{
		{
			Type:  "country",
			Class: football.ClassCountry,
			Properties: map[string]Property{
				"external_id": {Predicate: football.ExternalID, Datatype: xsd.Integer},
				"name":        {Predicate: football.Name, Datatype: xsd.String},
				"code":        {Predicate: football.CountryCode, Datatype: xsd.String},
				"flag_url":    {Predicate: football.Image, Datatype: xsd.AnyURI},
				"update_by":   {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":   {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
			InverseRelations: map[string]Relation{
				"teams":   {Predicate: football.HasTeam, Target: "team"},
				"players": {Predicate: football.HasPlayer, Target: "player"},
				"coaches": {Predicate: football.HasCoach, Target: "coach"},
				"venues":  {Predicate: football.HasVenue, Target: "venue"},
				"leagues": {Predicate: football.HasLeague, Target: "league"},
			},
		},
		{
			Type:  "venue",
			Class: football.ClassVenue,
			Properties: map[string]Property{
				"external_id": {Predicate: football.ExternalID, Datatype: xsd.Integer},
				"name":        {Predicate: football.Name, Datatype: xsd.String},
				"address":     {Predicate: football.Address, Datatype: xsd.String},
				"city":        {Predicate: football.AddressLocality, Datatype: xsd.String},
				"country_id":  {Predicate: football.Country, Ref: "country"},
				"capacity":    {Predicate: football.Capacity, Datatype: xsd.Integer},
				"surface":     {Predicate: football.SurfaceType, Datatype: xsd.String},
				"image_url":   {Predicate: football.Image, Datatype: xsd.AnyURI},
				"update_by":   {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":   {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
			InverseRelations: map[string]Relation{
				"home_teams": {Predicate: football.IsHomeVenueFor, Target: "team"},
				"fixtures":   {Predicate: football.HostsFixture, Target: "fixture"},
			},
		},
		{
			Type:  "league",
			Class: football.ClassLeague,
			Properties: map[string]Property{
				"external_id": {Predicate: football.ExternalID, Datatype: xsd.Integer},
				"name":        {Predicate: football.Name, Datatype: xsd.String},
				"type":        {Predicate: football.LeagueType, Datatype: xsd.String},
				"logo_url":    {Predicate: football.Logo, Datatype: xsd.AnyURI},
				"country_id":  {Predicate: football.Country, Ref: "country"},
				"update_by":   {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":   {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
			InverseRelations: map[string]Relation{
				"seasons":   {Predicate: football.HasSeason, Target: "season"},
				"fixtures":  {Predicate: football.HasFixture, Target: "fixture"},
				"standings": {Predicate: football.HasStanding, Target: "standing"},
			},
		},
		{
			Type:  "team",
			Class: football.ClassTeam,
			Properties: map[string]Property{
				"external_id":          {Predicate: football.ExternalID, Datatype: xsd.Integer},
				"name":                 {Predicate: football.Name, Datatype: xsd.String},
				"code":                 {Predicate: football.TeamCode, Datatype: xsd.String},
				"country_id":           {Predicate: football.Country, Ref: "country"},
				"founded":              {Predicate: football.FoundingDate, Datatype: xsd.GYear},
				"is_national":          {Predicate: football.IsNationalTeam, Datatype: xsd.Boolean},
				"logo_url":             {Predicate: football.Logo, Datatype: xsd.AnyURI},
				"venue_id":             {Predicate: football.Venue, Ref: "venue"},
				"total_matches":        {Predicate: football.TotalMatches, Datatype: xsd.Integer},
				"total_wins":           {Predicate: football.TotalWins, Datatype: xsd.Integer},
				"total_draws":          {Predicate: football.TotalDraws, Datatype: xsd.Integer},
				"total_losses":         {Predicate: football.TotalLosses, Datatype: xsd.Integer},
				"total_goals_scored":   {Predicate: football.TotalGoalsScored, Datatype: xsd.Integer},
				"total_goals_conceded": {Predicate: football.TotalGoalsConceded, Datatype: xsd.Integer},
				"update_by":            {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":            {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
			InverseRelations: map[string]Relation{
				"home_fixtures": {Predicate: football.HasHomeFixture, Target: "fixture"},
				"away_fixtures": {Predicate: football.HasAwayFixture, Target: "fixture"},
				"players":       {Predicate: football.HasPlayer, Target: "player"},
				"standings":     {Predicate: football.HasStanding, Target: "standing"},
				"statistics":    {Predicate: football.HasStatistics, Target: "team_statistics"},
				"squad":         {Predicate: football.HasSquadMember, Target: "team_player"},
			},
		},
		{
			Type:  "season",
			Class: football.ClassSeason,
			Properties: map[string]Property{
				"external_id": {Predicate: football.ExternalID, Datatype: xsd.Integer},
				"league_id":   {Predicate: football.League, Ref: "league"},
				"year":        {Predicate: football.Temporal, Datatype: xsd.GYear},
				"start_date":  {Predicate: football.StartDate, Datatype: xsd.Date},
				"end_date":    {Predicate: football.EndDate, Datatype: xsd.Date},
				"is_current":  {Predicate: football.IsCurrentSeason, Datatype: xsd.Boolean},
				"update_by":   {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":   {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
			InverseRelations: map[string]Relation{
				"fixtures":  {Predicate: football.HasFixture, Target: "fixture"},
				"standings": {Predicate: football.HasStanding, Target: "standing"},
			},
		},
		{
			Type:  "fixture_status",
			Class: football.ClassFixtureStatus,
			Properties: map[string]Property{
				"short_code":       {Predicate: football.StatusCode, Datatype: xsd.String},
				"long_description": {Predicate: football.RDFSLabel, Datatype: xsd.String},
				"status_type":      {Predicate: football.StatusType, Datatype: xsd.String},
				"description":      {Predicate: football.Description, Datatype: xsd.String},
			},
		},
		{
			Type:  "fixture",
			Class: football.ClassFixture,
			Properties: map[string]Property{
				"external_id":  {Predicate: football.ExternalID, Datatype: xsd.Integer},
				"league_id":    {Predicate: football.League, Ref: "league"},
				"season_id":    {Predicate: football.Season, Ref: "season"},
				"round":        {Predicate: football.Round, Datatype: xsd.String},
				"home_team_id": {Predicate: football.HomeTeam, Ref: "team"},
				"away_team_id": {Predicate: football.AwayTeam, Ref: "team"},
				"date":         {Predicate: football.FixtureDate, Datatype: xsd.DateTime},
				"venue_id":     {Predicate: football.Venue, Ref: "venue"},
				"referee":      {Predicate: football.Referee, Datatype: xsd.String},
				"status_id":    {Predicate: football.Status, Ref: "fixture_status"},
				"elapsed_time": {Predicate: football.ElapsedTime, Datatype: xsd.Integer},
				"timezone":     {Predicate: football.Timezone, Datatype: xsd.String},
				"home_score":   {Predicate: football.HomeScore, Datatype: xsd.Integer},
				"away_score":   {Predicate: football.AwayScore, Datatype: xsd.Integer},
				"is_finished":  {Predicate: football.IsFinished, Datatype: xsd.Boolean},
				"update_by":    {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":    {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
			InverseRelations: map[string]Relation{
				"events":     {Predicate: football.HasEvent, Target: "fixture_event"},
				"scores":     {Predicate: football.HasScore, Target: "fixture_score"},
				"odds":       {Predicate: football.HasOdds, Target: "odds"},
				"lineups":    {Predicate: football.HasLineup, Target: "fixture_lineup"},
				"statistics": {Predicate: football.HasStatistics, Target: "fixture_statistic"},
			},
		},
		{
			Type:  "fixture_score",
			Class: football.ClassFixtureScore,
			Properties: map[string]Property{
				"fixture_id": {Predicate: football.Fixture, Ref: "fixture"},
				"period":     {Predicate: football.ScorePeriod, Datatype: xsd.String},
				"home_score": {Predicate: football.HomeScore, Datatype: xsd.Integer},
				"away_score": {Predicate: football.AwayScore, Datatype: xsd.Integer},
			},
		},
		{
			Type:  "fixture_event",
			Class: football.ClassFixtureEvent,
			Properties: map[string]Property{
				"fixture_id":       {Predicate: football.Fixture, Ref: "fixture"},
				"team_id":          {Predicate: football.Team, Ref: "team"},
				"player_id":        {Predicate: football.Player, Ref: "player"},
				"assist_player_id": {Predicate: football.AssistingPlayer, Ref: "player"},
				"event_type":       {Predicate: football.EventType, Datatype: xsd.String},
				"detail":           {Predicate: football.EventDetail, Datatype: xsd.String},
				"minute":           {Predicate: football.EventMinute, Datatype: xsd.Integer},
				"comments":         {Predicate: football.EventComments, Datatype: xsd.String},
			},
		},
		{
			Type:  "fixture_statistic",
			Class: football.ClassFixtureStatistic,
			Properties: map[string]Property{
				"fixture_id": {Predicate: football.Fixture, Ref: "fixture"},
				"team_id":    {Predicate: football.Team, Ref: "team"},
				"stat_type":  {Predicate: football.StatisticType, Datatype: xsd.String},
				"value":      {Predicate: football.StatisticValue, Datatype: xsd.Decimal},
				"update_by":  {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":  {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
		},
		{
			Type:  "fixture_lineup",
			Class: football.ClassFixtureLineup,
			Properties: map[string]Property{
				"fixture_id":               {Predicate: football.Fixture, Ref: "fixture"},
				"team_id":                  {Predicate: football.Team, Ref: "team"},
				"formation":                {Predicate: football.Formation, Datatype: xsd.String},
				"player_primary_color":     {Predicate: football.PlayerPrimaryColor, Datatype: xsd.String},
				"player_number_color":      {Predicate: football.PlayerNumberColor, Datatype: xsd.String},
				"player_border_color":      {Predicate: football.PlayerBorderColor, Datatype: xsd.String},
				"goalkeeper_primary_color": {Predicate: football.GoalkeeperPrimaryColor, Datatype: xsd.String},
				"goalkeeper_number_color":  {Predicate: football.GoalkeeperNumberColor, Datatype: xsd.String},
				"goalkeeper_border_color":  {Predicate: football.GoalkeeperBorderColor, Datatype: xsd.String},
				"update_by":                {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":                {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
			InverseRelations: map[string]Relation{
				"players": {Predicate: football.HasPlayer, Target: "fixture_lineup_player"},
			},
		},
		{
			Type:  "fixture_lineup_player",
			Class: football.ClassLineupPlayer,
			Properties: map[string]Property{
				"lineup_id":     {Predicate: football.Lineup, Ref: "fixture_lineup"},
				"player_id":     {Predicate: football.Player, Ref: "player"},
				"number":        {Predicate: football.SquadNumber, Datatype: xsd.Integer},
				"position":      {Predicate: football.Position, Datatype: xsd.String},
				"grid":          {Predicate: football.PositionGrid, Datatype: xsd.String},
				"is_substitute": {Predicate: football.IsSubstitute, Datatype: xsd.Boolean},
				"update_by":     {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":     {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
		},
		{
			Type:  "fixture_coach",
			Class: football.ClassFixtureCoach,
			Properties: map[string]Property{
				"fixture_id": {Predicate: football.Fixture, Ref: "fixture"},
				"team_id":    {Predicate: football.Team, Ref: "team"},
				"coach_id":   {Predicate: football.Coach, Ref: "coach"},
				"update_by":  {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":  {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
		},
		{
			Type:  "fixture_player_statistic",
			Class: football.ClassFixturePlayerStatistic,
			Properties: map[string]Property{
				"fixture_id":          {Predicate: football.Fixture, Ref: "fixture"},
				"player_id":           {Predicate: football.Player, Ref: "player"},
				"team_id":             {Predicate: football.Team, Ref: "team"},
				"minutes_played":      {Predicate: football.MinutesPlayed, Datatype: xsd.Integer},
				"position":            {Predicate: football.Position, Datatype: xsd.String},
				"number":              {Predicate: football.SquadNumber, Datatype: xsd.Integer},
				"rating":              {Predicate: football.Rating, Datatype: xsd.Decimal},
				"is_captain":          {Predicate: football.IsCaptain, Datatype: xsd.Boolean},
				"is_substitute":       {Predicate: football.IsSubstitute, Datatype: xsd.Boolean},
				"shots_total":         {Predicate: football.ShotsTotal, Datatype: xsd.Integer},
				"shots_on_target":     {Predicate: football.ShotsOnTarget, Datatype: xsd.Integer},
				"goals_scored":        {Predicate: football.GoalsScored, Datatype: xsd.Integer},
				"goals_conceded":      {Predicate: football.GoalsConceded, Datatype: xsd.Integer},
				"assists":             {Predicate: football.Assists, Datatype: xsd.Integer},
				"saves":               {Predicate: football.GoalkeeperSaves, Datatype: xsd.Integer},
				"passes_total":        {Predicate: football.PassesTotal, Datatype: xsd.Integer},
				"passes_key":          {Predicate: football.KeyPasses, Datatype: xsd.Integer},
				"passes_accuracy":     {Predicate: football.PassAccuracy, Datatype: xsd.Decimal},
				"tackles_total":       {Predicate: football.TacklesTotal, Datatype: xsd.Integer},
				"blocks":              {Predicate: football.Blocks, Datatype: xsd.Integer},
				"interceptions":       {Predicate: football.Interceptions, Datatype: xsd.Integer},
				"duels_total":         {Predicate: football.DuelsTotal, Datatype: xsd.Integer},
				"duels_won":           {Predicate: football.DuelsWon, Datatype: xsd.Integer},
				"dribbles_attempts":   {Predicate: football.DribbleAttempts, Datatype: xsd.Integer},
				"dribbles_success":    {Predicate: football.DribbleSuccesses, Datatype: xsd.Integer},
				"dribbles_past":       {Predicate: football.DribbledPast, Datatype: xsd.Integer},
				"fouls_drawn":         {Predicate: football.FoulsDrawn, Datatype: xsd.Integer},
				"fouls_committed":     {Predicate: football.FoulsCommitted, Datatype: xsd.Integer},
				"yellow_cards":        {Predicate: football.YellowCards, Datatype: xsd.Integer},
				"red_cards":           {Predicate: football.RedCards, Datatype: xsd.Integer},
				"penalties_won":       {Predicate: football.PenaltiesWon, Datatype: xsd.Integer},
				"penalties_committed": {Predicate: football.PenaltiesCommitted, Datatype: xsd.Integer},
				"penalties_scored":    {Predicate: football.PenaltiesScored, Datatype: xsd.Integer},
				"penalties_missed":    {Predicate: football.PenaltiesMissed, Datatype: xsd.Integer},
				"penalties_saved":     {Predicate: football.PenaltiesSaved, Datatype: xsd.Integer},
				"offsides":            {Predicate: football.Offsides, Datatype: xsd.Integer},
				"update_by":           {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":           {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
		},
		{
			Type:  "player",
			Class: football.ClassPlayer,
			Properties: map[string]Property{
				"external_id":   {Predicate: football.ExternalID, Datatype: xsd.Integer},
				"name":          {Predicate: football.Name, Datatype: xsd.String},
				"first_name":    {Predicate: football.FirstName, Datatype: xsd.String},
				"last_name":     {Predicate: football.LastName, Datatype: xsd.String},
				"birth_date":    {Predicate: football.BirthDate, Datatype: xsd.Date},
				"birth_place":   {Predicate: football.BirthPlace, Datatype: xsd.String},
				"birth_country": {Predicate: football.BirthCountry, Datatype: xsd.String},
				"nationality":   {Predicate: football.Nationality, Datatype: xsd.String},
				"height":        {Predicate: football.Height, Datatype: xsd.String},
				"weight":        {Predicate: football.Weight, Datatype: xsd.String},
				"position":      {Predicate: football.Position, Datatype: xsd.String},
				"number":        {Predicate: football.SquadNumber, Datatype: xsd.Integer},
				"is_injured":    {Predicate: football.IsInjured, Datatype: xsd.Boolean},
				"photo_url":     {Predicate: football.Image, Datatype: xsd.AnyURI},
				"team_id":       {Predicate: football.Team, Ref: "team"},
				"update_by":     {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":     {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
			InverseRelations: map[string]Relation{
				"events":             {Predicate: football.HasEvent, Target: "fixture_event"},
				"statistics":         {Predicate: football.HasStatistics, Target: "player_statistics"},
				"injuries":           {Predicate: football.HasInjury, Target: "player_injury"},
				"transfers":          {Predicate: football.HasTransfer, Target: "player_transfer"},
				"teams_history":      {Predicate: football.HasTeamHistory, Target: "player_team"},
				"lineup_appearances": {Predicate: football.HasLineupAppearance, Target: "fixture_lineup_player"},
				"sidelines":          {Predicate: football.HasSideline, Target: "player_sideline"},
			},
		},
		{
			Type:  "player_statistics",
			Class: football.ClassPlayerAggregatedStatistic,
			Properties: map[string]Property{
				"player_id":        {Predicate: football.Player, Ref: "player"},
				"fixture_id":       {Predicate: football.Fixture, Ref: "fixture"},
				"team_id":          {Predicate: football.Team, Ref: "team"},
				"minutes_played":   {Predicate: football.MinutesPlayed, Datatype: xsd.Integer},
				"goals":            {Predicate: football.GoalsScored, Datatype: xsd.Integer},
				"assists":          {Predicate: football.Assists, Datatype: xsd.Integer},
				"shots_total":      {Predicate: football.ShotsTotal, Datatype: xsd.Integer},
				"shots_on_target":  {Predicate: football.ShotsOnTarget, Datatype: xsd.Integer},
				"passes":           {Predicate: football.PassesTotal, Datatype: xsd.Integer},
				"key_passes":       {Predicate: football.KeyPasses, Datatype: xsd.Integer},
				"pass_accuracy":    {Predicate: football.PassAccuracy, Datatype: xsd.Decimal},
				"tackles":          {Predicate: football.TacklesTotal, Datatype: xsd.Integer},
				"interceptions":    {Predicate: football.Interceptions, Datatype: xsd.Integer},
				"duels_total":      {Predicate: football.DuelsTotal, Datatype: xsd.Integer},
				"duels_won":        {Predicate: football.DuelsWon, Datatype: xsd.Integer},
				"dribbles_success": {Predicate: football.DribbleSuccesses, Datatype: xsd.Integer},
				"fouls_committed":  {Predicate: football.FoulsCommitted, Datatype: xsd.Integer},
				"fouls_drawn":      {Predicate: football.FoulsDrawn, Datatype: xsd.Integer},
				"yellow_cards":     {Predicate: football.YellowCards, Datatype: xsd.Integer},
				"red_cards":        {Predicate: football.RedCards, Datatype: xsd.Integer},
				"rating":           {Predicate: football.Rating, Datatype: xsd.Decimal},
				"is_substitute":    {Predicate: football.IsSubstitute, Datatype: xsd.Boolean},
				"update_by":        {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":        {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
		},
		{
			Type:  "player_injury",
			Class: football.ClassPlayerInjury,
			Properties: map[string]Property{
				"player_id":            {Predicate: football.Player, Ref: "player"},
				"fixture_id":           {Predicate: football.Fixture, Ref: "fixture"},
				"type":                 {Predicate: football.InjuryType, Datatype: xsd.String},
				"severity":             {Predicate: football.InjurySeverity, Datatype: xsd.String},
				"status":               {Predicate: football.InjuryStatus, Datatype: xsd.String},
				"start_date":           {Predicate: football.StartDate, Datatype: xsd.Date},
				"end_date":             {Predicate: football.EndDate, Datatype: xsd.Date},
				"expected_return_date": {Predicate: football.ExpectedReturnDate, Datatype: xsd.Date},
				"recovery_time":        {Predicate: football.RecoveryTime, Datatype: xsd.Integer},
				"update_by":            {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":            {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
		},
		{
			Type:  "coach",
			Class: football.ClassCoach,
			Properties: map[string]Property{
				"external_id": {Predicate: football.ExternalID, Datatype: xsd.Integer},
				"name":        {Predicate: football.Name, Datatype: xsd.String},
				"first_name":  {Predicate: football.FirstName, Datatype: xsd.String},
				"last_name":   {Predicate: football.LastName, Datatype: xsd.String},
				"birth_date":  {Predicate: football.BirthDate, Datatype: xsd.Date},
				"nationality": {Predicate: football.Nationality, Datatype: xsd.String},
				"photo_url":   {Predicate: football.Image, Datatype: xsd.AnyURI},
				"team_id":     {Predicate: football.Team, Ref: "team"},
				"update_by":   {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":   {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
			InverseRelations: map[string]Relation{
				"career_entries":      {Predicate: football.HasCareerEntry, Target: "coach_career"},
				"fixture_appearances": {Predicate: football.HasFixtureAppearance, Target: "fixture_coach"},
			},
		},
		{
			Type:  "coach_career",
			Class: football.ClassCoachCareer,
			Properties: map[string]Property{
				"coach_id":   {Predicate: football.Coach, Ref: "coach"},
				"team_id":    {Predicate: football.Team, Ref: "team"},
				"role":       {Predicate: football.CoachRole, Datatype: xsd.String},
				"start_date": {Predicate: football.StartDate, Datatype: xsd.Date},
				"end_date":   {Predicate: football.EndDate, Datatype: xsd.Date},
				"matches":    {Predicate: football.CareerMatches, Datatype: xsd.Integer},
				"wins":       {Predicate: football.CareerWins, Datatype: xsd.Integer},
				"draws":      {Predicate: football.CareerDraws, Datatype: xsd.Integer},
				"losses":     {Predicate: football.CareerLosses, Datatype: xsd.Integer},
				"update_by":  {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":  {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
		},
		{
			Type:  "bookmaker",
			Class: football.ClassBookmaker,
			Properties: map[string]Property{
				"external_id": {Predicate: football.ExternalID, Datatype: xsd.Integer},
				"name":        {Predicate: football.Name, Datatype: xsd.String},
			},
			InverseRelations: map[string]Relation{
				"odds": {Predicate: football.HasOdds, Target: "odds"},
			},
		},
		{
			Type:  "odds_type",
			Class: football.ClassOddsType,
			Properties: map[string]Property{
				"external_id": {Predicate: football.ExternalID, Datatype: xsd.Integer},
				"name":        {Predicate: football.Name, Datatype: xsd.String},
			},
		},
		{
			Type:  "odds_value",
			Class: football.ClassOddsValue,
			Properties: map[string]Property{
				"odds_id":       {Predicate: football.OddsValueOf, Ref: "odds"},
				"value":         {Predicate: football.OddValue, Datatype: xsd.Decimal},
				"label":         {Predicate: football.OddLabel, Datatype: xsd.String},
				"is_suspicious": {Predicate: football.IsSuspicious, Datatype: xsd.Boolean},
			},
		},
		{
			Type:  "odds",
			Class: football.ClassOdds,
			Properties: map[string]Property{
				"external_id":  {Predicate: football.ExternalID, Datatype: xsd.Integer},
				"fixture_id":   {Predicate: football.Fixture, Ref: "fixture"},
				"bookmaker_id": {Predicate: football.Bookmaker, Ref: "bookmaker"},
				"odds_type_id": {Predicate: football.OddsType, Ref: "odds_type"},
				"update_at":    {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
			InverseRelations: map[string]Relation{
				"history": {Predicate: football.HasOddsHistory, Target: "odds_history"},
			},
		},
		{
			Type:  "odds_history",
			Class: football.ClassOddsHistory,
			Properties: map[string]Property{
				"odds_id":     {Predicate: football.Odds, Ref: "odds"},
				"old_value":   {Predicate: football.OldOddValue, Datatype: xsd.Decimal},
				"new_value":   {Predicate: football.NewOddValue, Datatype: xsd.Decimal},
				"change_time": {Predicate: football.Created, Datatype: xsd.DateTime},
				"movement":    {Predicate: football.OddsMovement, Datatype: xsd.String},
				"update_by":   {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":   {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
		},
		{
			Type:  "standing",
			Class: football.ClassStanding,
			Properties: map[string]Property{
				"league_id":     {Predicate: football.League, Ref: "league"},
				"season_id":     {Predicate: football.Season, Ref: "season"},
				"team_id":       {Predicate: football.Team, Ref: "team"},
				"rank":          {Predicate: football.Rank, Datatype: xsd.Integer},
				"points":        {Predicate: football.Points, Datatype: xsd.Integer},
				"goals_diff":    {Predicate: football.GoalsDiff, Datatype: xsd.Integer},
				"group":         {Predicate: football.StandingGroup, Datatype: xsd.String},
				"form":          {Predicate: football.Form, Datatype: xsd.String},
				"played":        {Predicate: football.Played, Datatype: xsd.Integer},
				"wins":          {Predicate: football.Wins, Datatype: xsd.Integer},
				"draws":         {Predicate: football.Draws, Datatype: xsd.Integer},
				"losses":        {Predicate: football.Losses, Datatype: xsd.Integer},
				"goals_for":     {Predicate: football.GoalsFor, Datatype: xsd.Integer},
				"goals_against": {Predicate: football.GoalsAgainst, Datatype: xsd.Integer},
				"update_at":     {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
		},
		{
			Type:  "player_transfer",
			Class: football.ClassPlayerTransfer,
			Properties: map[string]Property{
				"player_id":     {Predicate: football.Player, Ref: "player"},
				"from_team_id":  {Predicate: football.FromTeam, Ref: "team"},
				"to_team_id":    {Predicate: football.ToTeam, Ref: "team"},
				"transfer_date": {Predicate: football.TransferDate, Datatype: xsd.Date},
				"transfer_type": {Predicate: football.TransferType, Datatype: xsd.String},
			},
		},
		{
			Type:  "player_sideline",
			Class: football.ClassPlayerSideline,
			Properties: map[string]Property{
				"player_id":  {Predicate: football.Player, Ref: "player"},
				"type":       {Predicate: football.SidelineType, Datatype: xsd.String},
				"start_date": {Predicate: football.StartDate, Datatype: xsd.Date},
				"end_date":   {Predicate: football.EndDate, Datatype: xsd.Date},
			},
		},
		{
			Type:  "player_team",
			Class: football.ClassPlayerTeamHistory,
			Properties: map[string]Property{
				"player_id":  {Predicate: football.Player, Ref: "player"},
				"team_id":    {Predicate: football.Team, Ref: "team"},
				"season_id":  {Predicate: football.Season, Ref: "season"},
				"is_current": {Predicate: football.IsCurrentTeamForSeason, Datatype: xsd.Boolean},
				"update_by":  {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at":  {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
		},
		{
			Type:  "team_player",
			Class: football.ClassTeamSquadMember,
			Properties: map[string]Property{
				"team_id":   {Predicate: football.Team, Ref: "team"},
				"player_id": {Predicate: football.Player, Ref: "player"},
				"position":  {Predicate: football.Position, Datatype: xsd.String},
				"number":    {Predicate: football.SquadNumber, Datatype: xsd.Integer},
				"is_active": {Predicate: football.IsActiveSquadMember, Datatype: xsd.Boolean},
				"update_by": {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at": {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
		},
		{
			Type:  "team_statistics",
			Class: football.ClassTeamStatistics,
			Properties: map[string]Property{
				"team_id":   {Predicate: football.Team, Ref: "team"},
				"league_id": {Predicate: football.League, Ref: "league"},
				"season_id": {Predicate: football.Season, Ref: "season"},
				"form":      {Predicate: football.Form, Datatype: xsd.String},

				"matches_played_home":  {Predicate: football.HomeMatchesPlayed, Datatype: xsd.Integer},
				"matches_played_away":  {Predicate: football.AwayMatchesPlayed, Datatype: xsd.Integer},
				"matches_played_total": {Predicate: football.TotalMatches, Datatype: xsd.Integer},
				"wins_home":            {Predicate: football.HomeWins, Datatype: xsd.Integer},
				"wins_away":            {Predicate: football.AwayWins, Datatype: xsd.Integer},
				"wins_total":           {Predicate: football.TotalWins, Datatype: xsd.Integer},
				"draws_home":           {Predicate: football.HomeDraws, Datatype: xsd.Integer},
				"draws_away":           {Predicate: football.AwayDraws, Datatype: xsd.Integer},
				"draws_total":          {Predicate: football.TotalDraws, Datatype: xsd.Integer},
				"losses_home":          {Predicate: football.HomeLosses, Datatype: xsd.Integer},
				"losses_away":          {Predicate: football.AwayLosses, Datatype: xsd.Integer},
				"losses_total":         {Predicate: football.TotalLosses, Datatype: xsd.Integer},

				"goals_for_home":              {Predicate: football.HomeGoalsFor, Datatype: xsd.Integer},
				"goals_for_away":              {Predicate: football.AwayGoalsFor, Datatype: xsd.Integer},
				"goals_for_total":             {Predicate: football.TotalGoalsScored, Datatype: xsd.Integer},
				"goals_against_home":          {Predicate: football.HomeGoalsAgainst, Datatype: xsd.Integer},
				"goals_against_away":          {Predicate: football.AwayGoalsAgainst, Datatype: xsd.Integer},
				"goals_against_total":         {Predicate: football.TotalGoalsConceded, Datatype: xsd.Integer},
				"goals_for_average_home":      {Predicate: football.HomeGoalsForAverage, Datatype: xsd.Decimal},
				"goals_for_average_away":      {Predicate: football.AwayGoalsForAverage, Datatype: xsd.Decimal},
				"goals_for_average_total":     {Predicate: football.TotalGoalsForAverage, Datatype: xsd.Decimal},
				"goals_against_average_home":  {Predicate: football.HomeGoalsAgainstAverage, Datatype: xsd.Decimal},
				"goals_against_average_away":  {Predicate: football.AwayGoalsAgainstAverage, Datatype: xsd.Decimal},
				"goals_against_average_total": {Predicate: football.TotalGoalsAgainstAverage, Datatype: xsd.Decimal},

				"streak_wins":   {Predicate: football.WinningStreak, Datatype: xsd.Integer},
				"streak_draws":  {Predicate: football.DrawingStreak, Datatype: xsd.Integer},
				"streak_losses": {Predicate: football.LosingStreak, Datatype: xsd.Integer},

				"biggest_win_home":  {Predicate: football.BiggestHomeWin, Datatype: xsd.String},
				"biggest_win_away":  {Predicate: football.BiggestAwayWin, Datatype: xsd.String},
				"biggest_loss_home": {Predicate: football.BiggestHomeLoss, Datatype: xsd.String},
				"biggest_loss_away": {Predicate: football.BiggestAwayLoss, Datatype: xsd.String},

				"clean_sheets_home":     {Predicate: football.HomeCleanSheets, Datatype: xsd.Integer},
				"clean_sheets_away":     {Predicate: football.AwayCleanSheets, Datatype: xsd.Integer},
				"clean_sheets_total":    {Predicate: football.TotalCleanSheets, Datatype: xsd.Integer},
				"failed_to_score_home":  {Predicate: football.HomeFailedToScore, Datatype: xsd.Integer},
				"failed_to_score_away":  {Predicate: football.AwayFailedToScore, Datatype: xsd.Integer},
				"failed_to_score_total": {Predicate: football.TotalFailedToScore, Datatype: xsd.Integer},

				"penalties_scored": {Predicate: football.PenaltiesScored, Datatype: xsd.Integer},
				"penalties_missed": {Predicate: football.PenaltiesMissed, Datatype: xsd.Integer},
				"penalties_total":  {Predicate: football.PenaltiesTotal, Datatype: xsd.Integer},

				"update_by": {Predicate: football.ModifiedBy, Datatype: xsd.String},
				"update_at": {Predicate: football.Modified, Datatype: xsd.DateTime},
			},
		},
	}
}
