package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// openInput opens a file or http(s) url, or reads stdin when input is empty.
func openInput(input string, stdin io.Reader) (io.ReadCloser, error) {
	if input == "" {
		return ioutil.NopCloser(stdin), nil
	}
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		resp, err := http.Get(input)
		if err != nil {
			return nil, errors.Wrap(err, "fetch input")
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, errors.Errorf("fetch input %s: %s", input, resp.Status)
		}
		return resp.Body, nil
	}
	file, err := os.Open(input)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return file, nil
}

// decodeInput decodes a single image from input.
func decodeInput(input string, stdin io.Reader) (image.Image, string, error) {
	r, err := openInput(input, stdin)
	if err != nil {
		return nil, "", err
	}
	defer r.Close()

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "decode image")
	}
	return img, format, nil
}
