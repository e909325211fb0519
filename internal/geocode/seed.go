package geocode

import "github.com/harsh15-create/real-unfoldindia-backend/internal/domain/route"

// seedCities pre-populates the geocode cache with well-known Indian cities
// so the most common lookups never hit Nominatim.
var seedCities = map[string]route.Coordinate{
	"delhi":              {Lat: 28.6139, Lng: 77.2090},
	"new delhi":          {Lat: 28.6139, Lng: 77.2090},
	"mumbai":             {Lat: 19.0760, Lng: 72.8777},
	"bangalore":          {Lat: 12.9716, Lng: 77.5946},
	"bengaluru":          {Lat: 12.9716, Lng: 77.5946},
	"chennai":            {Lat: 13.0827, Lng: 80.2707},
	"kolkata":            {Lat: 22.5726, Lng: 88.3639},
	"hyderabad":          {Lat: 17.3850, Lng: 78.4867},
	"pune":               {Lat: 18.5204, Lng: 73.8567},
	"jaipur":             {Lat: 26.9124, Lng: 75.7873},
	"ahmedabad":          {Lat: 23.0225, Lng: 72.5714},
	"lucknow":            {Lat: 26.8467, Lng: 80.9462},
	"agra":               {Lat: 27.1767, Lng: 78.0081},
	"varanasi":           {Lat: 25.3176, Lng: 82.9739},
	"goa":                {Lat: 15.2993, Lng: 74.1240},
	"udaipur":            {Lat: 24.5854, Lng: 73.7125},
	"jodhpur":            {Lat: 26.2389, Lng: 73.0243},
	"amritsar":           {Lat: 31.6340, Lng: 74.8723},
	"shimla":             {Lat: 31.1048, Lng: 77.1734},
	"manali":             {Lat: 32.2396, Lng: 77.1887},
	"rishikesh":          {Lat: 30.0869, Lng: 78.2676},
	"haridwar":           {Lat: 29.9457, Lng: 78.1642},
	"mysore":             {Lat: 12.2958, Lng: 76.6394},
	"mysuru":             {Lat: 12.2958, Lng: 76.6394},
	"kochi":              {Lat: 9.9312, Lng: 76.2673},
	"thiruvananthapuram": {Lat: 8.5241, Lng: 76.9366},
	"chandigarh":         {Lat: 30.7333, Lng: 76.7794},
	"indore":             {Lat: 22.7196, Lng: 75.8577},
	"bhopal":             {Lat: 23.2599, Lng: 77.4126},
	"nagpur":             {Lat: 21.1458, Lng: 79.0882},
	"surat":              {Lat: 21.1702, Lng: 72.8311},
	"coimbatore":         {Lat: 11.0168, Lng: 76.9558},
	"visakhapatnam":      {Lat: 17.6868, Lng: 83.2185},
	"patna":              {Lat: 25.6093, Lng: 85.1376},
	"ranchi":             {Lat: 23.3441, Lng: 85.3096},
	"dehradun":           {Lat: 30.3165, Lng: 78.0322},
	"guwahati":           {Lat: 26.1445, Lng: 91.7362},
	"bhubaneswar":        {Lat: 20.2961, Lng: 85.8245},
	"trivandrum":         {Lat: 8.5241, Lng: 76.9366},
	"madurai":            {Lat: 9.9252, Lng: 78.1198},
	"jaisalmer":          {Lat: 26.9157, Lng: 70.9083},
	"pushkar":            {Lat: 26.4900, Lng: 74.5513},
	"mathura":            {Lat: 27.4924, Lng: 77.6737},
	"leh":                {Lat: 34.1526, Lng: 77.5771},
	"srinagar":           {Lat: 34.0837, Lng: 74.7973},
	"darjeeling":         {Lat: 27.0360, Lng: 88.2627},
	"gangtok":            {Lat: 27.3389, Lng: 88.6065},
	"ooty":               {Lat: 11.4102, Lng: 76.6950},
	"kodaikanal":         {Lat: 10.2381, Lng: 77.4892},
	"mount abu":          {Lat: 24.5926, Lng: 72.7156},
	"nainital":           {Lat: 29.3803, Lng: 79.4636},
	"mussoorie":          {Lat: 30.4598, Lng: 78.0644},
}
