package fakeapi

import (
	"fmt"
	"sort"
)

const imageBaseURL = "https://images.dog.ceo/breeds/"

// Data is the content that a Server publishes: every breed, with its sub-breeds.
type Data struct {
	Breeds map[string][]string

	// ImagesPerBreed is how many images are generated for each breed, or for each sub-breed
	// of a breed that has them.
	ImagesPerBreed int
}

// DefaultData returns a breed list shaped like the one the public API publishes.
func DefaultData() Data {
	return Data{
		Breeds: map[string][]string{
			"affenpinscher":  {},
			"african":        {},
			"airedale":       {},
			"akita":          {},
			"appenzeller":    {},
			"australian":     {"kelpie", "shepherd"},
			"basenji":        {},
			"beagle":         {},
			"bluetick":       {},
			"borzoi":         {},
			"bouvier":        {},
			"boxer":          {},
			"brabancon":      {},
			"briard":         {},
			"buhund":         {"norwegian"},
			"bulldog":        {"boston", "english", "french"},
			"bullterrier":    {"staffordshire"},
			"cattledog":      {"australian"},
			"chihuahua":      {},
			"chow":           {},
			"clumber":        {},
			"cockapoo":       {},
			"collie":         {"border"},
			"coonhound":      {},
			"corgi":          {"cardigan"},
			"cotondetulear":  {},
			"dachshund":      {},
			"dalmatian":      {},
			"dane":           {"great"},
			"deerhound":      {"scottish"},
			"dhole":          {},
			"dingo":          {},
			"doberman":       {},
			"elkhound":       {"norwegian"},
			"entlebucher":    {},
			"eskimo":         {},
			"finnish":        {"lapphund"},
			"frise":          {"bichon"},
			"germanshepherd": {},
			"greyhound":      {"italian"},
			"groenendael":    {},
			"havanese":       {},
			"hound":          {"afghan", "basset", "blood", "english", "ibizan", "plott", "walker"},
			"husky":          {},
			"keeshond":       {},
			"kelpie":         {},
			"komondor":       {},
			"kuvasz":         {},
			"labradoodle":    {},
			"labrador":       {},
			"leonberg":       {},
			"lhasa":          {},
			"malamute":       {},
			"malinois":       {},
			"maltese":        {},
			"mastiff":        {"bull", "english", "tibetan"},
			"mix":            {},
			"mountain":       {"bernese", "swiss"},
			"newfoundland":   {},
			"otterhound":     {},
			"papillon":       {},
			"pekinese":       {},
			"pembroke":       {},
			"pinscher":       {"miniature"},
			"pitbull":        {},
			"pointer":        {"german", "germanlonghair"},
			"pomeranian":     {},
			"poodle":         {"medium", "miniature", "standard", "toy"},
			"pug":            {},
			"retriever":      {"chesapeake", "curly", "flatcoated", "golden"},
			"ridgeback":      {"rhodesian"},
			"rottweiler":     {},
			"saluki":         {},
			"samoyed":        {},
			"schnauzer":      {"giant", "miniature"},
			"setter":         {"english", "gordon", "irish"},
			"shiba":          {},
			"shihtzu":        {},
			"spaniel":        {"blenheim", "brittany", "cocker", "irish", "japanese", "sussex", "welsh"},
			"springer":       {"english"},
			"stbernard":      {},
			"terrier":        {"american", "australian", "border", "cairn", "irish", "norfolk", "yorkshire"},
			"vizsla":         {},
			"waterdog":       {"spanish"},
			"weimaraner":     {},
			"whippet":        {},
			"wolfhound":      {"irish"},
		},
		ImagesPerBreed: 3,
	}
}

// BreedNames returns all of the breed names in sorted order.
func (d Data) BreedNames() []string {
	ret := make([]string, 0, len(d.Breeds))
	for name := range d.Breeds {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Images returns the image URLs for a breed, or false if there is no such breed.
func (d Data) Images(breed string) ([]string, bool) {
	subBreeds, ok := d.Breeds[breed]
	if !ok {
		return nil, false
	}
	dirs := []string{breed}
	if len(subBreeds) != 0 {
		dirs = nil
		for _, sub := range subBreeds {
			dirs = append(dirs, breed+"-"+sub)
		}
	}
	var ret []string
	for _, dir := range dirs {
		for i := 1; i <= d.ImagesPerBreed; i++ {
			ret = append(ret, fmt.Sprintf("%s%s/%s_%d.jpg", imageBaseURL, dir, breed, i))
		}
	}
	return ret, true
}

// AllImages returns the image URLs for every breed.
func (d Data) AllImages() []string {
	var ret []string
	for _, name := range d.BreedNames() {
		images, _ := d.Images(name)
		ret = append(ret, images...)
	}
	return ret
}
