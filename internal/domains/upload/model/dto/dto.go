package dto

import "folio/internal/domains/upload/model"

type AssetResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Bytes    int64  `json:"bytes"`
}

func (r *AssetResponse) FromModel(asset model.Asset) {
	r.URL = asset.URL
	r.PublicID = asset.PublicID
	r.Width = asset.Width
	r.Height = asset.Height
	r.Format = asset.Format
	r.Bytes = asset.Bytes
}

type UploadManyResponse struct {
	Assets []AssetResponse `json:"assets"`
	URLs   []string        `json:"urls"`
}

func (r *UploadManyResponse) FromModels(assets []model.Asset) {
	r.Assets = make([]AssetResponse, len(assets))
	r.URLs = make([]string, len(assets))

	for i, asset := range assets {
		r.Assets[i].FromModel(asset)
		r.URLs[i] = asset.URL
	}
}
