package usecase

import (
	bCtx "github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/domain/collection"
)

// featured is the curated landing-page set. Each creator address is the
// account whose created assets form the collection.
var featured = []*collection.Collection{
	{
		Name:    "Nevermore",
		Creator: "NVRMRE2Q7B5JC4BN3GAYSKQRV72YDDW35K3CDJUWBY2QVMV6RCSGMHBFNQ",
		Icon:    "/assets/collections/nevermore.png",
	},
	{
		Name:    "Alchemon",
		Creator: "ALCHMN4FNKFYQGXAJS5PGVU2WDYNHGJ5UA6YSB3H6TQZIXDJCLNL5TS2XU",
		Icon:    "/assets/collections/alchemon.png",
	},
	{
		Name:    "Al Goanna",
		Creator: "GOANNAZ3BU7GNXCX5VROMZZNWOKMDCCNAHVXGT7BU2SLDHZW62CQPDDJBE",
		Icon:    "/assets/collections/al-goanna.png",
	},
	{
		Name:    "Shitty Kitties",
		Creator: "KITTY5VY6KVJM3ZEJM2IZK26PAVIYH2TKZGSBBLFJTOQNGRORPYXZ5TEYA",
		Icon:    "/assets/collections/shitty-kitties.png",
	},
	{
		Name:    "Yieldlings",
		Creator: "YLDLNGS3XBAR6X2SBTAYXMDGPJXL4MRCS5DAOXGGR4AQQKCDFBXEJFLJ3U",
		Icon:    "/assets/collections/yieldlings.png",
	},
}

type impl struct{}

func New() collection.Usecase {
	return &impl{}
}

func (im *impl) Featured(c bCtx.Ctx) []*collection.Collection {
	out := make([]*collection.Collection, len(featured))
	copy(out, featured)
	return out
}
