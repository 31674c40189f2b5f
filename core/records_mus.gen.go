// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice2jkdDg9ΔTmDΔuPnΣrHU7fQΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var LayoutMUS = layoutMUS{}

type layoutMUS struct{}

func (s layoutMUS) Marshal(v Layout, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s layoutMUS) Unmarshal(bs []byte) (v Layout, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Layout(tmp)
	return
}

func (s layoutMUS) Size(v Layout) (size int) {
	return ord.String.Size(string(v))
}

func (s layoutMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var BackgroundModeMUS = backgroundModeMUS{}

type backgroundModeMUS struct{}

func (s backgroundModeMUS) Marshal(v BackgroundMode, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s backgroundModeMUS) Unmarshal(bs []byte) (v BackgroundMode, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = BackgroundMode(tmp)
	return
}

func (s backgroundModeMUS) Size(v BackgroundMode) (size int) {
	return ord.String.Size(string(v))
}

func (s backgroundModeMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var ColorVariantMUS = colorVariantMUS{}

type colorVariantMUS struct{}

func (s colorVariantMUS) Marshal(v ColorVariant, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s colorVariantMUS) Unmarshal(bs []byte) (v ColorVariant, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ColorVariant(tmp)
	return
}

func (s colorVariantMUS) Size(v ColorVariant) (size int) {
	return ord.String.Size(string(v))
}

func (s colorVariantMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var CategoryMUS = categoryMUS{}

type categoryMUS struct{}

func (s categoryMUS) Marshal(v Category, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s categoryMUS) Unmarshal(bs []byte) (v Category, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Category(tmp)
	return
}

func (s categoryMUS) Size(v Category) (size int) {
	return ord.String.Size(string(v))
}

func (s categoryMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var RawAssetRecordMUS = rawAssetRecordMUS{}

type rawAssetRecordMUS struct{}

func (s rawAssetRecordMUS) Marshal(v RawAssetRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.Product, bs)
	n += CategoryMUS.Marshal(v.Category, bs[n:])
	n += LayoutMUS.Marshal(v.Layout, bs[n:])
	n += ColorVariantMUS.Marshal(v.Variant, bs[n:])
	n += BackgroundModeMUS.Marshal(v.Background, bs[n:])
	n += ord.String.Marshal(v.Filename, bs[n:])
	n += ord.String.Marshal(v.BaseRef, bs[n:])
	n += ord.String.Marshal(v.Thumbnail, bs[n:])
	n += ord.String.Marshal(v.FileType, bs[n:])
	n += ord.String.Marshal(v.DocType, bs[n:])
	n += slice2jkdDg9ΔTmDΔuPnΣrHU7fQΞΞ.Marshal(v.Tags, bs[n:])
	return n + ord.Bool.Marshal(v.Primary, bs[n:])
}

func (s rawAssetRecordMUS) Unmarshal(bs []byte) (v RawAssetRecord, n int, err error) {
	v.Product, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Category, n1, err = CategoryMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Layout, n1, err = LayoutMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Variant, n1, err = ColorVariantMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Background, n1, err = BackgroundModeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Filename, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BaseRef, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Thumbnail, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FileType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DocType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Tags, n1, err = slice2jkdDg9ΔTmDΔuPnΣrHU7fQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Primary, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	return
}

func (s rawAssetRecordMUS) Size(v RawAssetRecord) (size int) {
	size = ord.String.Size(v.Product)
	size += CategoryMUS.Size(v.Category)
	size += LayoutMUS.Size(v.Layout)
	size += ColorVariantMUS.Size(v.Variant)
	size += BackgroundModeMUS.Size(v.Background)
	size += ord.String.Size(v.Filename)
	size += ord.String.Size(v.BaseRef)
	size += ord.String.Size(v.Thumbnail)
	size += ord.String.Size(v.FileType)
	size += ord.String.Size(v.DocType)
	size += slice2jkdDg9ΔTmDΔuPnΣrHU7fQΞΞ.Size(v.Tags)
	return size + ord.Bool.Size(v.Primary)
}

func (s rawAssetRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = CategoryMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = LayoutMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ColorVariantMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = BackgroundModeMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice2jkdDg9ΔTmDΔuPnΣrHU7fQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	return
}
