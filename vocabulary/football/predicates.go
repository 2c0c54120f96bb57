package football

// Shared predicates used across most entity types.
const (
	// ExternalID is the upstream provider identifier.
	ExternalID = Namespace + "externalId"

	// Name is the schema.org name predicate.
	Name = SchemaNamespace + "name"

	// Image is the schema.org image predicate.
	Image = SchemaNamespace + "image"

	// Logo is the schema.org logo predicate.
	Logo = SchemaNamespace + "logo"

	// ModifiedBy records the principal of the last relational write.
	ModifiedBy = DCTermsNamespace + "modifiedBy"

	// Modified records the timestamp of the last relational write.
	Modified = DCTermsNamespace + "modified"

	// Description is the Dublin Core description predicate.
	Description = DCTermsNamespace + "description"
)

// Country predicates.
const (
	CountryCode = Namespace + "countryCode"
)

// Venue predicates.
const (
	Address         = SchemaNamespace + "address"
	AddressLocality = SchemaNamespace + "addressLocality"
	Capacity        = Namespace + "capacity"
	SurfaceType     = Namespace + "surfaceType"
)

// Team predicates.
const (
	TeamCode           = Namespace + "teamCode"
	FoundingDate       = SchemaNamespace + "foundingDate"
	IsNationalTeam     = Namespace + "isNationalTeam"
	TotalMatches       = Namespace + "totalMatches"
	TotalWins          = Namespace + "totalWins"
	TotalDraws         = Namespace + "totalDraws"
	TotalLosses        = Namespace + "totalLosses"
	TotalGoalsScored   = Namespace + "totalGoalsScored"
	TotalGoalsConceded = Namespace + "totalGoalsConceded"
)

// Reference predicates linking entities together.
const (
	Country  = Namespace + "country"
	Venue    = Namespace + "venue"
	League   = Namespace + "league"
	Season   = Namespace + "season"
	Team     = Namespace + "team"
	Player   = Namespace + "player"
	Coach    = Namespace + "coach"
	Fixture  = Namespace + "fixture"
	HomeTeam = Namespace + "homeTeam"
	AwayTeam = Namespace + "awayTeam"
	FromTeam = Namespace + "fromTeam"
	ToTeam   = Namespace + "toTeam"
)

// League and season predicates.
const (
	LeagueType      = Namespace + "leagueType"
	Temporal        = DCTermsNamespace + "temporal"
	StartDate       = DCTermsNamespace + "startDate"
	EndDate         = DCTermsNamespace + "endDate"
	IsCurrentSeason = Namespace + "isCurrentSeason"
)

// Fixture predicates.
const (
	Round            = Namespace + "round"
	FixtureDate      = SchemaNamespace + "startDate"
	Referee          = Namespace + "referee"
	Status           = Namespace + "status"
	StatusCode       = Namespace + "statusCode"
	StatusType       = Namespace + "statusType"
	ElapsedTime      = Namespace + "elapsedTime"
	Timezone         = DCTermsNamespace + "temporalResolution"
	HomeScore        = Namespace + "homeScore"
	AwayScore        = Namespace + "awayScore"
	IsFinished       = Namespace + "isFinished"
	ScorePeriod      = Namespace + "scorePeriod"
	EventType        = Namespace + "eventType"
	EventDetail      = Namespace + "eventDetail"
	EventMinute      = Namespace + "eventMinute"
	EventComments    = Namespace + "eventComments"
	AssistingPlayer  = Namespace + "assistingPlayer"
	SubstitutePlayer = Namespace + "substitutePlayer"
)

// Player and coach predicates.
const (
	FirstName    = SchemaNamespace + "givenName"
	LastName     = SchemaNamespace + "familyName"
	BirthDate    = SchemaNamespace + "birthDate"
	BirthPlace   = SchemaNamespace + "birthPlace"
	BirthCountry = Namespace + "birthCountry"
	Nationality  = SchemaNamespace + "nationality"
	Height       = SchemaNamespace + "height"
	Weight       = SchemaNamespace + "weight"
	Position     = Namespace + "position"
	SquadNumber  = Namespace + "squadNumber"
	IsInjured    = Namespace + "isInjured"
)

// Odds predicates.
const (
	OddsType     = Namespace + "oddsType"
	OddsValueOf  = Namespace + "oddsValue"
	Bookmaker    = Namespace + "bookmaker"
	OddValue     = Namespace + "oddValue"
	OddLabel     = Namespace + "oddLabel"
	IsSuspicious = Namespace + "isSuspicious"
)

// Standing predicates.
const (
	Rank          = Namespace + "rank"
	Points        = Namespace + "points"
	GoalsDiff     = Namespace + "goalsDiff"
	StandingGroup = Namespace + "standingGroup"
	Form          = Namespace + "form"
	Played        = Namespace + "played"
	Wins          = Namespace + "wins"
	Draws         = Namespace + "draws"
	Losses        = Namespace + "losses"
	GoalsFor      = Namespace + "goalsFor"
	GoalsAgainst  = Namespace + "goalsAgainst"
)

// Transfer and sideline predicates.
const (
	TransferDate = Namespace + "transferDate"
	TransferType = Namespace + "transferType"
	SidelineType = Namespace + "sidelineType"
)

// Lineup predicates.
const (
	Lineup                 = Namespace + "lineup"
	Formation              = Namespace + "formation"
	PlayerPrimaryColor     = Namespace + "playerPrimaryColor"
	PlayerNumberColor      = Namespace + "playerNumberColor"
	PlayerBorderColor      = Namespace + "playerBorderColor"
	GoalkeeperPrimaryColor = Namespace + "goalkeeperPrimaryColor"
	GoalkeeperNumberColor  = Namespace + "goalkeeperNumberColor"
	GoalkeeperBorderColor  = Namespace + "goalkeeperBorderColor"
	PositionGrid           = Namespace + "positionGrid"
	IsSubstitute           = Namespace + "isSubstitute"
)

// Match statistic predicates, shared by fixture-level and player-level
// statistic rows.
const (
	StatisticType      = StatsNamespace + "statisticType"
	StatisticValue     = StatsNamespace + "statisticValue"
	MinutesPlayed      = StatsNamespace + "minutesPlayed"
	Rating             = StatsNamespace + "rating"
	IsCaptain          = Namespace + "isCaptain"
	ShotsTotal         = StatsNamespace + "shotsTotal"
	ShotsOnTarget      = StatsNamespace + "shotsOnTarget"
	GoalsScored        = StatsNamespace + "goalsScored"
	GoalsConceded      = StatsNamespace + "goalsConceded"
	Assists            = StatsNamespace + "assists"
	GoalkeeperSaves    = StatsNamespace + "goalkeeperSaves"
	PassesTotal        = StatsNamespace + "passesTotal"
	KeyPasses          = StatsNamespace + "keyPasses"
	PassAccuracy       = StatsNamespace + "passAccuracy"
	TacklesTotal       = StatsNamespace + "tacklesTotal"
	Blocks             = StatsNamespace + "blocks"
	Interceptions      = StatsNamespace + "interceptions"
	DuelsTotal         = StatsNamespace + "duelsTotal"
	DuelsWon           = StatsNamespace + "duelsWon"
	DribbleAttempts    = StatsNamespace + "dribbleAttempts"
	DribbleSuccesses   = StatsNamespace + "dribbleSuccesses"
	DribbledPast       = StatsNamespace + "dribbledPast"
	FoulsDrawn         = StatsNamespace + "foulsDrawn"
	FoulsCommitted     = StatsNamespace + "foulsCommitted"
	YellowCards        = StatsNamespace + "yellowCards"
	RedCards           = StatsNamespace + "redCards"
	PenaltiesWon       = StatsNamespace + "penaltiesWon"
	PenaltiesCommitted = StatsNamespace + "penaltiesCommitted"
	PenaltiesScored    = StatsNamespace + "penaltiesScored"
	PenaltiesMissed    = StatsNamespace + "penaltiesMissed"
	PenaltiesSaved     = StatsNamespace + "penaltiesSaved"
	PenaltiesTotal     = StatsNamespace + "penaltiesTotal"
	Offsides           = StatsNamespace + "offsides"
)

// Season-aggregate team statistic predicates with home/away splits.
const (
	HomeMatchesPlayed        = StatsNamespace + "homeMatchesPlayed"
	AwayMatchesPlayed        = StatsNamespace + "awayMatchesPlayed"
	HomeWins                 = StatsNamespace + "homeWins"
	AwayWins                 = StatsNamespace + "awayWins"
	HomeDraws                = StatsNamespace + "homeDraws"
	AwayDraws                = StatsNamespace + "awayDraws"
	HomeLosses               = StatsNamespace + "homeLosses"
	AwayLosses               = StatsNamespace + "awayLosses"
	HomeGoalsFor             = StatsNamespace + "homeGoalsFor"
	AwayGoalsFor             = StatsNamespace + "awayGoalsFor"
	HomeGoalsAgainst         = StatsNamespace + "homeGoalsAgainst"
	AwayGoalsAgainst         = StatsNamespace + "awayGoalsAgainst"
	HomeGoalsForAverage      = StatsNamespace + "homeGoalsForAverage"
	AwayGoalsForAverage      = StatsNamespace + "awayGoalsForAverage"
	TotalGoalsForAverage     = StatsNamespace + "totalGoalsForAverage"
	HomeGoalsAgainstAverage  = StatsNamespace + "homeGoalsAgainstAverage"
	AwayGoalsAgainstAverage  = StatsNamespace + "awayGoalsAgainstAverage"
	TotalGoalsAgainstAverage = StatsNamespace + "totalGoalsAgainstAverage"
	WinningStreak            = StatsNamespace + "winningStreak"
	DrawingStreak            = StatsNamespace + "drawingStreak"
	LosingStreak             = StatsNamespace + "losingStreak"
	BiggestHomeWin           = StatsNamespace + "biggestHomeWin"
	BiggestAwayWin           = StatsNamespace + "biggestAwayWin"
	BiggestHomeLoss          = StatsNamespace + "biggestHomeLoss"
	BiggestAwayLoss          = StatsNamespace + "biggestAwayLoss"
	HomeCleanSheets          = StatsNamespace + "homeCleanSheets"
	AwayCleanSheets          = StatsNamespace + "awayCleanSheets"
	TotalCleanSheets         = StatsNamespace + "totalCleanSheets"
	HomeFailedToScore        = StatsNamespace + "homeFailedToScore"
	AwayFailedToScore        = StatsNamespace + "awayFailedToScore"
	TotalFailedToScore       = StatsNamespace + "totalFailedToScore"
)

// Injury and coaching-career predicates.
const (
	InjuryType         = Namespace + "injuryType"
	InjurySeverity     = Namespace + "injurySeverity"
	InjuryStatus       = Namespace + "injuryStatus"
	ExpectedReturnDate = Namespace + "expectedReturnDate"
	RecoveryTime       = Namespace + "recoveryTime"
	CoachRole          = Namespace + "coachRole"
	CareerMatches      = Namespace + "careerMatches"
	CareerWins         = Namespace + "careerWins"
	CareerDraws        = Namespace + "careerDraws"
	CareerLosses       = Namespace + "careerLosses"
)

// Odds-history and squad predicates.
const (
	Odds                   = Namespace + "odds"
	OldOddValue            = Namespace + "oldOddValue"
	NewOddValue            = Namespace + "newOddValue"
	OddsMovement           = Namespace + "oddsMovement"
	Created                = DCTermsNamespace + "created"
	IsCurrentTeamForSeason = Namespace + "isCurrentTeamForSeason"
	IsActiveSquadMember    = Namespace + "isActiveSquadMember"
)

// Inverse relation predicates (entity -> dependents).
const (
	HasTeam        = Namespace + "hasTeam"
	HasPlayer      = Namespace + "hasPlayer"
	HasCoach       = Namespace + "hasCoach"
	HasVenue       = Namespace + "hasVenue"
	HasLeague      = Namespace + "hasLeague"
	HasSeason      = Namespace + "hasSeason"
	HasFixture     = Namespace + "hasFixture"
	HasHomeFixture = Namespace + "hasHomeFixture"
	HasAwayFixture = Namespace + "hasAwayFixture"
	HasStanding    = Namespace + "hasStanding"
	HasStatistics  = Namespace + "hasStatistics"
	HasEvent       = Namespace + "hasEvent"
	HasScore       = Namespace + "hasScore"
	HasOdds        = Namespace + "hasOdds"
	HostsFixture   = Namespace + "hostsFixture"
	IsHomeVenueFor = Namespace + "isHomeVenueFor"

	HasInjury            = Namespace + "hasInjury"
	HasTransfer          = Namespace + "hasTransfer"
	HasTeamHistory       = Namespace + "hasTeamHistory"
	HasLineupAppearance  = Namespace + "hasLineupAppearance"
	HasSideline          = Namespace + "hasSideline"
	HasCareerEntry       = Namespace + "hasCareerEntry"
	HasFixtureAppearance = Namespace + "hasFixtureAppearance"
	HasLineup            = Namespace + "hasLineup"
	HasOddsHistory       = Namespace + "hasOddsHistory"
	HasSquadMember       = Namespace + "hasSquadMember"
)
